package main

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/maze-server/internal/driver"
	"github.com/vancomm/maze-server/internal/generator"
	"github.com/vancomm/maze-server/internal/maze"
	"github.com/vancomm/maze-server/internal/solver"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type newRunParams struct {
	Width      int     `schema:"width,required"`
	Height     int     `schema:"height,required"`
	Generator  string  `schema:"generator"`
	Solver     string  `schema:"solver"`
	CellSize   int     `schema:"cell_size"`
	Seed       *uint32 `schema:"seed"`
	Start      string  `schema:"start"`
	End        string  `schema:"end"`
	RandomEnds bool    `schema:"random_ends"`
	InstantGen bool    `schema:"instant_gen"`
	Ups        int     `schema:"ups"`
}

func writeJson(w http.ResponseWriter, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(payload)
}

func handleStatus(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("OK"))
}

func handleVariants(w http.ResponseWriter, r *http.Request) {
	if err := writeJson(w, map[string][]string{
		"generators": generator.Variants(),
		"solvers":    solver.Variants(),
	}); err != nil {
		log.Error(err)
	}
}

func handleNewRun(w http.ResponseWriter, r *http.Request) {
	params := newRunParams{
		Generator: "dfs",
		Solver:    "astar",
		CellSize:  40,
		Ups:       cfg.TickRate,
	}
	if err := decoder.Decode(&params, r.URL.Query()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if params.Width < 1 || params.Height < 1 {
		http.Error(w, "maze dimensions must be positive", http.StatusBadRequest)
		return
	}
	if params.Ups < 1 {
		http.Error(w, "ups must be positive", http.StatusBadRequest)
		return
	}

	log.WithFields(logrus.Fields{
		"width":     params.Width,
		"height":    params.Height,
		"generator": params.Generator,
		"solver":    params.Solver,
	}).Info("new run request")

	rng := driver.SeededRand(params.Seed)
	m := maze.New(maze.Grid{
		Width: params.Width, Height: params.Height,
		CellWidth: params.CellSize, CellHeight: params.CellSize,
	})
	if params.RandomEnds {
		m.RandomEnds(rng)
	}
	if params.Start != "" {
		c, err := maze.ParseCoord(params.Start)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if !m.Contains(c) {
			http.Error(w, "start is outside the maze", http.StatusBadRequest)
			return
		}
		m.Start = c
	}
	if params.End != "" {
		c, err := maze.ParseCoord(params.End)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if !m.Contains(c) {
			http.Error(w, "end is outside the maze", http.StatusBadRequest)
			return
		}
		m.End = c
	}

	run, err := driver.New(m, params.Generator, params.Solver, rng)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if params.InstantGen {
		if err := run.DrainPhase(r.Context()); err != nil {
			log.Error("generation: ", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	s := &session{id: newSessionId(), run: run, ups: params.Ups}
	sessions.add(s)

	w.WriteHeader(http.StatusCreated)
	if err := writeJson(w, s.snapshot()); err != nil {
		log.Error(err)
	}
}

func handleGetRun(w http.ResponseWriter, r *http.Request) {
	s, ok := sessions.get(r.PathValue("id"))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err := writeJson(w, s.snapshot()); err != nil {
		log.Error(err)
	}
}

func handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	if !sessions.remove(r.PathValue("id")) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
