package store

// schemaVersion is the current analytics schema version.
const schemaVersion = 1

// schema is the analytics DDL: one row per run, with per-oracle insight
// rows and per-layer guardrail rows hanging off it. seq orders runs stably
// even when timestamps collide.
var schema = `
CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL);

CREATE TABLE IF NOT EXISTS runs (
	seq              INTEGER PRIMARY KEY AUTOINCREMENT,
	id               TEXT NOT NULL UNIQUE,
	created_at       TEXT NOT NULL,
	source           TEXT NOT NULL DEFAULT 'cli',
	guardrail_status TEXT NOT NULL,
	question         TEXT NOT NULL,
	overall_acuity   REAL NOT NULL DEFAULT 0,
	emergent         INTEGER NOT NULL DEFAULT 0,
	payload          TEXT NOT NULL DEFAULT '{}'
);
CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(guardrail_status);

CREATE TABLE IF NOT EXISTS insights (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id    TEXT NOT NULL,
	oracle    TEXT NOT NULL,
	acuity    REAL NOT NULL DEFAULT 0,
	outcome   TEXT NOT NULL,
	statement TEXT NOT NULL,
	evidence  TEXT,
	FOREIGN KEY (run_id) REFERENCES runs(id)
);
CREATE INDEX IF NOT EXISTS idx_insights_run ON insights(run_id);
CREATE INDEX IF NOT EXISTS idx_insights_oracle ON insights(oracle);

CREATE TABLE IF NOT EXISTS guardrail_findings (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id    TEXT NOT NULL,
	layer     TEXT NOT NULL,
	status    TEXT NOT NULL,
	rationale TEXT,
	FOREIGN KEY (run_id) REFERENCES runs(id)
);
CREATE INDEX IF NOT EXISTS idx_findings_run ON guardrail_findings(run_id);
CREATE INDEX IF NOT EXISTS idx_findings_status ON guardrail_findings(status);
`
