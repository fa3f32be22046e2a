package logx

const (
	FieldAppName    = "app-name"
	FieldDurationMs = "duration-ms"
	FieldError      = "error"
	FieldPath       = "path"
	FieldRunID      = "run-id"
	FieldSource     = "source"
	FieldRows       = "rows"
	FieldQueries    = "queries"
	FieldWorkers    = "workers"
	FieldReason     = "reason"
	FieldCount      = "count"
)
