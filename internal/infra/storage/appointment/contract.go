package appointment

import "github.com/clearpath-advisory/booking-service/pkg/dbmetrics"

// Reuse the executor interfaces from dbmetrics so the repository runs on a
// bare *sql.DB or the instrumented wrapper interchangeably.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
