// Package tracker holds the temporal aggregation core: calendar bucketing for
// day/week/month views, night-window resolution of sleep intervals into
// hourly occupancy blocks, and the toggle/upsert ledger for habit completions
// and mood entries. Everything here is a stateless computation over the
// storage.Provider collaborators; concurrency and retries live at the
// request-handling rim.
package tracker
