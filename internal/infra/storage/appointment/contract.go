package appointment

import "github.com/glowtress/booking-service/pkg/dbmetrics"

// DBExecutor and TxExecutor are re-exported from dbmetrics so the repository
// accepts both a bare *sql.DB and the instrumented wrapper.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
