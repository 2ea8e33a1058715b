package main

import (
	"context"
	"fmt"

	"pasithulir/internal/db"
	"pasithulir/internal/seed"
	"pasithulir/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Create the schema and seed the database with demo data",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "fake-records",
			Aliases: []string{"n"},
			Usage:   "Number of fake donations and requests to generate",
			Value:   20,
		},
		&cli.BoolFlag{
			Name:  "reset",
			Usage: "Delete previously seeded fake records first",
		},
		&cli.BoolFlag{
			Name:  "board",
			Usage: "Seed the live board with demo entries",
			Value: true,
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logrus.Info("Connected to database")

		logrus.Info("Ensuring schema...")
		if err := seed.EnsureSchema(ctx, pool); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}

		donationRepo := store.NewDonationRepository(pool)
		requestRepo := store.NewRequestRepository(pool)
		boardRepo := store.NewBoardRepository(pool)

		if c.Bool("board") {
			logrus.Info("Seeding live board entries...")
			if err := seed.SeedBoardItems(ctx, boardRepo); err != nil {
				return fmt.Errorf("failed to seed board items: %w", err)
			}
		}

		logrus.Info("Seeding fake donations and requests...")
		if err := seed.SeedFakeRecords(ctx, pool, donationRepo, requestRepo, c.Int("fake-records"), c.Bool("reset")); err != nil {
			return fmt.Errorf("failed to seed fake records: %w", err)
		}

		logrus.Info("Seed complete")

		return nil
	},
}
