// Package jobs provides scheduled background tasks for the marketplace.
//
// Jobs use github.com/robfig/cron/v3 with the six-field format (seconds first)
// and are started and stopped with the fx application lifecycle.
//
// # Available Jobs
//
// RatingReconcileJob recomputes the rating aggregate of every reviewed shop and
// delivery agent from its reviews. Review submission already updates the
// aggregate; the job repairs aggregates that were edited or lost out of band.
package jobs
