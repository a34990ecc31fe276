package audit

import "github.com/m04kA/BMS-ScheduleService/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics для работы с БД:
// репозиторий одинаково работает с *sql.DB и оберткой с метриками
type DBExecutor = dbmetrics.DBExecutor
