// Package learning implements the adaptive learning progress engine:
// quiz quality scoring, SM-2 style spaced-repetition scheduling, adaptive
// question difficulty selection and learning-resource ranking.
//
// Every operation is a pure, synchronous computation over explicit input
// and output records. The package performs no I/O and holds no mutable
// state; persistence and serialisation of concurrent updates belong to
// the caller.
//
// Basic usage:
//
//	engine, err := learning.NewEngine(learning.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	progress, err := engine.Schedule(nil, attempt, time.Now())
package learning
