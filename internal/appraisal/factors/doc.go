// Package factors contains the deterministic scoring functions behind an
// appraisal: one scorer per weighted signal, the TLD classifier they share,
// the gating multipliers and the static tables everything is keyed on. All
// functions here are pure; adapters and persistence live with the engine.
package factors
