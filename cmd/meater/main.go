package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/Zahlii/meater-api/internal/client"
	"github.com/Zahlii/meater-api/internal/config"
	"github.com/Zahlii/meater-api/internal/logger"
	"github.com/Zahlii/meater-api/internal/models"
	"github.com/Zahlii/meater-api/internal/reference"
)

func main() {
	var (
		csvCook     string
		showDevices bool
	)
	flag.StringVar(&csvCook, "csv", "", "dump the history of the cook with this ID as CSV to stdout")
	flag.BoolVar(&showDevices, "devices", false, "also list live devices from the public API")
	flag.Parse()

	// load config.yml / MEATER_* env
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.LogLevel)

	// load bundled reference tables
	tables, err := reference.Load()
	if err != nil {
		log.Fatalw("failed to load meat reference data", "err", err)
	}

	ctx := context.Background()

	// construct client: loads persisted state, ensures device identity, logs in
	c, err := client.New(ctx, cfg, tables, log)
	if err != nil {
		log.Fatalw("failed to initialize client", "err", err)
	}

	cooks, err := c.GetCooks(ctx)
	if err != nil {
		log.Fatalw("failed to fetch cooks", "err", err)
	}

	if csvCook != "" {
		if err := dumpHistoryCSV(cooks, csvCook); err != nil {
			log.Fatalw("failed to dump history", "cook_id", csvCook, "err", err)
		}
		return
	}

	for _, cook := range cooks {
		fmt.Println(cook.Summary(tables))
	}

	if showDevices {
		printLiveDevices(ctx, c, log)
	}
}

// printLiveDevices lists each probe's current readings and cook state.
func printLiveDevices(ctx context.Context, c *client.Client, log *logger.Logger) {
	devices, err := c.GetLiveDevices(ctx)
	if err != nil {
		log.Fatalw("failed to fetch live devices", "err", err)
	}
	for _, d := range devices {
		line := fmt.Sprintf("Device %s: internal=%.1f°C ambient=%.1f°C (updated %s)",
			d.ID, d.Temperature.Internal, d.Temperature.Ambient,
			d.UpdatedTime().Format("2006-01-02 15:04:05"))
		if d.Cook != nil {
			line += fmt.Sprintf(" cook=%q state=%s elapsed=%s",
				d.Cook.Name, d.Cook.State, d.Cook.Time.ElapsedTime())
		}
		fmt.Println(line)
	}
}

// dumpHistoryCSV writes the selected cook's temperature table to stdout.
func dumpHistoryCSV(cooks []models.Cook, cookID string) error {
	for _, cook := range cooks {
		if cook.ID != cookID {
			continue
		}
		w := csv.NewWriter(os.Stdout)
		if err := w.Write([]string{"time", "ambient_c", "internal_c"}); err != nil {
			return err
		}
		for _, row := range cook.HistoryTable() {
			record := []string{
				row.Time.Format("2006-01-02T15:04:05Z07:00"),
				strconv.FormatFloat(row.AmbientC, 'f', 2, 64),
				strconv.FormatFloat(row.InternalC, 'f', 2, 64),
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	}
	return fmt.Errorf("no cook with id %s", cookID)
}
