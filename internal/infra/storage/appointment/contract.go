package appointment

import (
	"github.com/davidrm-dev/BarberShop-BookingService/pkg/dbmetrics"
)

// Reuse the dbmetrics interfaces so the repository works against *sql.DB,
// the metric wrapper and open transactions alike.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
