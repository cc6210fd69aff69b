package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/rxtech-lab/argo-refdata/internal/catalog"
	"github.com/rxtech-lab/argo-refdata/internal/logger"
	"github.com/rxtech-lab/argo-refdata/internal/types"
	"github.com/rxtech-lab/argo-refdata/pkg/utils"
)

// FileSet names the four configuration documents a catalog is built from.
// Paths left empty are simply not loaded.
type FileSet struct {
	Sessions    string `yaml:"sessions"`
	Commodities string `yaml:"commodities"`
	Contracts   string `yaml:"contracts"`
	Holidays    string `yaml:"holidays"`
}

// buildCatalog loads the file set named by --config into a fresh catalog.
func buildCatalog(cmd *cli.Command) (*catalog.Catalog, error) {
	configPath := cmd.String("config")

	content, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	var fileSet FileSet
	if err := yaml.Unmarshal(content, &fileSet); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}

	logInstance, err := logger.NewLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	store := catalog.NewCatalog(logInstance)

	if fileSet.Sessions != "" {
		if err := store.LoadSessions(fileSet.Sessions); err != nil {
			return nil, err
		}
	}

	if fileSet.Commodities != "" {
		if err := store.LoadCommodities(fileSet.Commodities); err != nil {
			return nil, err
		}
	}

	if fileSet.Contracts != "" {
		if err := store.LoadContracts(fileSet.Contracts); err != nil {
			return nil, err
		}
	}

	if fileSet.Holidays != "" {
		if err := store.LoadHolidays(fileSet.Holidays); err != nil {
			return nil, err
		}
	}

	return store, nil
}

// contractAction resolves one contract and prints its coordinates.
func contractAction(_ context.Context, cmd *cli.Command) error {
	code := cmd.Args().Get(0)
	if code == "" {
		return fmt.Errorf("contract code argument is required")
	}

	store, err := buildCatalog(cmd)
	if err != nil {
		return err
	}

	cInfo, err := store.Contract(code, cmd.String("exchange"), uint32(cmd.Uint("date")))
	if err != nil {
		return err
	}

	fmt.Printf("code: %s\nname: %s\nproduct: %s\naltcode: %s\nopen: %d\nexpire: %d\nindex: %d\n",
		cInfo.FullCode(), cInfo.Name, cInfo.Product, cInfo.AltCode,
		cInfo.OpenDate, cInfo.ExpireDate, cInfo.TotalIndex)

	return nil
}

// tdateAction prints the trading date a wall-clock timestamp belongs to.
func tdateAction(_ context.Context, cmd *cli.Command) error {
	id := cmd.Args().Get(0)
	if id == "" {
		return fmt.Errorf("product key or session id argument is required")
	}

	store, err := buildCatalog(cmd)
	if err != nil {
		return err
	}

	tDate := store.CalcTradingDate(id,
		uint32(cmd.Uint("date")), uint32(cmd.Uint("time")), cmd.Bool("session"))
	fmt.Println(tDate)

	return nil
}

// boundaryAction prints the open or close timestamp of a trading date.
func boundaryAction(_ context.Context, cmd *cli.Command) error {
	id := cmd.Args().Get(0)
	if id == "" {
		return fmt.Errorf("product key or session id argument is required")
	}

	store, err := buildCatalog(cmd)
	if err != nil {
		return err
	}

	boundary, err := store.BoundaryTime(id,
		uint32(cmd.Uint("date")), cmd.Bool("session"), !cmd.Bool("end"))
	if err != nil {
		return err
	}

	fmt.Println(boundary)

	return nil
}

// schemaAction prints the JSON schema of one of the config documents.
func schemaAction(_ context.Context, cmd *cli.Command) error {
	var config any

	switch doc := cmd.Args().Get(0); doc {
	case "sessions":
		config = types.SessionsDocument{}
	case "commodities":
		config = types.CommoditiesDocument{}
	case "contracts":
		config = types.ContractsDocument{}
	case "holidays":
		config = types.HolidaysDocument{}
	default:
		return fmt.Errorf("unknown document %q: expected sessions, commodities, contracts or holidays", doc)
	}

	schema, err := utils.GetSchemaFromConfig(config)
	if err != nil {
		return fmt.Errorf("failed to generate schema: %w", err)
	}

	fmt.Println(schema)

	return nil
}

func main() {
	configFlag := &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to the catalog file-set config",
		Value:   "refdata.yaml",
	}
	sessionFlag := &cli.BoolFlag{
		Name:  "session",
		Usage: "Treat the argument as a session id instead of a product key",
	}
	dateFlag := &cli.UintFlag{
		Name:    "date",
		Aliases: []string{"d"},
		Usage:   "Reference date as `YYYYMMDD`, 0 for today",
	}

	cmd := &cli.Command{
		Name:  "refdata",
		Usage: "Query the trading-calendar and reference-data catalog",
		Commands: []*cli.Command{
			{
				Name:      "contract",
				Usage:     "Resolve a contract by code",
				ArgsUsage: "<code>",
				Flags: []cli.Flag{
					configFlag,
					dateFlag,
					&cli.StringFlag{
						Name:    "exchange",
						Aliases: []string{"e"},
						Usage:   "Restrict the lookup to one exchange",
					},
				},
				Action: contractAction,
			},
			{
				Name:      "tdate",
				Usage:     "Compute the trading date of a wall-clock timestamp",
				ArgsUsage: "<product-key|session-id>",
				Flags: []cli.Flag{
					configFlag,
					sessionFlag,
					dateFlag,
					&cli.UintFlag{
						Name:    "time",
						Aliases: []string{"t"},
						Usage:   "Time of day as `HHMM`",
					},
				},
				Action: tdateAction,
			},
			{
				Name:      "boundary",
				Usage:     "Compute the open or close timestamp of a trading date",
				ArgsUsage: "<product-key|session-id>",
				Flags: []cli.Flag{
					configFlag,
					sessionFlag,
					dateFlag,
					&cli.BoolFlag{
						Name:  "end",
						Usage: "Return the close boundary instead of the open",
					},
				},
				Action: boundaryAction,
			},
			{
				Name:      "schema",
				Usage:     "Print the JSON schema of a configuration document",
				ArgsUsage: "<sessions|commodities|contracts|holidays>",
				Action:    schemaAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
