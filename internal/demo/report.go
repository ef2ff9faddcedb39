package demo

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"vecmath/internal/config"
)

type Report struct {
	RunID    string   `json:"run_id"`
	Scenario string   `json:"scenario"`
	Seed     int64    `json:"seed"`
	Events   []Event  `json:"events"`
	Failed   int      `json:"failed"`
	Notes    []string `json:"notes,omitempty"`
}

// Run defines the scenario's vectors and executes its steps in order. A
// non-zero seed overrides the scenario's own. Vectors that cannot be built
// are noted in the report and skipped; steps referring to them fail.
func Run(sc *config.Scenario, seed int64) *Report {
	if seed == 0 {
		seed = sc.Seed
	}
	rep := &Report{
		RunID:    uuid.New().String(),
		Scenario: sc.Name,
		Seed:     seed,
		Events:   make([]Event, 0, len(sc.Steps)),
	}
	r := NewRunner(seed, func(ev Event) {
		rep.Events = append(rep.Events, ev)
		if ev.Err != "" {
			rep.Failed++
		}
	})
	for _, def := range sc.Vectors {
		if err := r.Define(def.Name, def.Coords); err != nil {
			rep.Notes = append(rep.Notes, err.Error())
			logrus.WithFields(logrus.Fields{
				"vector": def.Name,
				"error":  err,
			}).Warn("skipping vector")
		}
	}
	for i, st := range sc.Steps {
		r.Step(i, st)
	}
	logrus.WithFields(logrus.Fields{
		"run_id":   rep.RunID,
		"scenario": rep.Scenario,
		"steps":    len(rep.Events),
		"failed":   rep.Failed,
	}).Info("scenario finished")
	return rep
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
