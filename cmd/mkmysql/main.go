package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/darianmavgo/mkmysql/adapters"
	_ "github.com/darianmavgo/mkmysql/adapters/all"
	"github.com/darianmavgo/mkmysql/config"
	"github.com/darianmavgo/mkmysql/importer"
	"github.com/darianmavgo/mkmysql/workbook"
)

func main() {
	var (
		excelPath   = flag.String("excel", "", "path to the source workbook (required)")
		database    = flag.String("database", "", "target database name, or file path for sqlite (required)")
		dbType      = flag.String("database-type", "", "target database type (default \"mysql\")")
		host        = flag.String("host", "", "database server host")
		port        = flag.Int("port", 0, "database server port")
		user        = flag.String("user", "", "database user")
		password    = flag.String("password", "", "database password")
		clear       = flag.Bool("clear", false, "delete existing rows from each target table before loading")
		skip        = flag.Int("skip", 0, "rows to discard from the top of each sheet")
		djangoStyle = flag.Bool("django-style", false, "rewrite table and column names to the django naming convention")
		configPath  = flag.String("config", "", "HCL config file with connection defaults")
		initConfig  = flag.String("init-config", "", "write a starter config file to the given path and exit")
	)
	flag.Parse()

	if *initConfig != "" {
		if err := config.Export(*initConfig, config.DefaultConfig()); err != nil {
			fmt.Printf("ERROR:> %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote config to %s\n", *initConfig)
		return
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Printf("ERROR:> %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	opts := buildOptions(cfg, *excelPath, *database, *dbType, *host, *port, *user, *password, *clear, *skip, *djangoStyle)
	if err := validate(opts); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		fmt.Printf("ERROR:> %v\n", err)
		os.Exit(1)
	}
}

// buildOptions merges config file values with flags; a flag given on the
// command line wins over the config file.
func buildOptions(cfg *config.Config, excelPath, database, dbType, host string, port int, user, password string, clear bool, skip int, djangoStyle bool) *importer.Options {
	opts := &importer.Options{
		Source:       excelPath,
		DatabaseType: cfg.DatabaseType,
		Database:     cfg.Database,
		Host:         cfg.Host,
		Port:         cfg.Port,
		User:         cfg.User,
		Password:     cfg.Password,
		Clear:        cfg.Clear,
		Skip:         cfg.Skip,
		DjangoStyle:  cfg.DjangoStyle,
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["database"] {
		opts.Database = database
	}
	if set["database-type"] {
		opts.DatabaseType = dbType
	}
	if set["host"] {
		opts.Host = host
	}
	if set["port"] {
		opts.Port = port
	}
	if set["user"] {
		opts.User = user
	}
	if set["password"] {
		opts.Password = password
	}
	if set["clear"] {
		opts.Clear = clear
	}
	if set["skip"] {
		opts.Skip = skip
	}
	if set["django-style"] {
		opts.DjangoStyle = djangoStyle
	}

	return opts
}

func validate(opts *importer.Options) error {
	if opts.Source == "" {
		return fmt.Errorf("missing required flag: -excel")
	}
	if opts.Database == "" {
		return fmt.Errorf("missing required flag: -database")
	}
	if opts.DatabaseType == "mysql" {
		switch {
		case opts.Host == "":
			return fmt.Errorf("missing required flag: -host")
		case opts.Port <= 0:
			return fmt.Errorf("missing required flag: -port")
		case opts.User == "":
			return fmt.Errorf("missing required flag: -user")
		case opts.Password == "":
			return fmt.Errorf("missing required flag: -password")
		}
	}
	return nil
}

// run parses the workbook, opens the shared connection pool, and imports
// every table on its own goroutine. A failed table reports its own error
// line and never takes the others down with it.
func run(opts *importer.Options) error {
	tables, err := workbook.Parse(opts.Source)
	if err != nil {
		return err
	}

	db, err := adapters.Open(opts.DatabaseType, adapters.Config{
		Host:     opts.Host,
		Port:     opts.Port,
		User:     opts.User,
		Password: opts.Password,
		Database: opts.Database,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	var wg sync.WaitGroup
	for _, table := range tables {
		if opts.DjangoStyle {
			table.ApplyConvention()
		}

		wg.Add(1)
		go func(t *workbook.Table) {
			defer wg.Done()
			outcome, err := importer.ImportTable(opts, db, t)
			if err != nil {
				fmt.Printf("ERROR:> %v\n", err)
				return
			}
			fmt.Printf("Import %d rows for %s\n", outcome.Rows, outcome.Table)
		}(table)
	}
	wg.Wait()

	return nil
}
