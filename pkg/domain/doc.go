// Package domain contains the core value types produced and consumed by the
// appraisal pipeline: domain keys, factor scores, comparable sales, legal
// verdicts and the Appraisal record itself. These types represent business
// concepts and are intentionally free of infrastructure concerns so they can
// be shared across packages.
package domain
