package all

import (
	// Import all the backends so they register themselves
	_ "github.com/darianmavgo/mkmysql/adapters/mysql"
	_ "github.com/darianmavgo/mkmysql/adapters/sqlite"
)
