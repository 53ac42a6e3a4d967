package main

import (
	"fmt"
	"strconv"

	"github.com/mauv0809/fighter-franchise/internal/athlete"
	"github.com/mauv0809/fighter-franchise/internal/money"
	"github.com/mauv0809/fighter-franchise/internal/result"
	"github.com/spf13/cobra"
)

var athleteColumns = columns[athlete.Athlete]{
	noun:    "athletes",
	one:     "athlete",
	headers: []string{"ID", "Name", "Gender", "Price", "Purchased", "Image"},
	row: func(a athlete.Athlete) []string {
		return []string{strconv.Itoa(a.ID), a.Name, a.Gender, a.Price.String(), strconv.FormatBool(a.Purchased), a.Image}
	},
}

func newAthletesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "athletes",
		Aliases: []string{"athlete"},
		Short:   "List and edit the athletes on the market",
	}
	cmd.AddCommand(
		listAthletesCmd(a),
		getAthleteCmd(a),
		createAthleteCmd(a),
		updateAthleteCmd(a),
		deleteAthleteCmd(a),
	)
	return cmd
}

func listAthletesCmd(a *app) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all athletes, or those whose name matches --search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var r result.Result[[]athlete.Athlete]
			if search != "" {
				r = a.athletes.SearchByName(cmd.Context(), search)
			} else {
				r = a.athletes.LoadAll(cmd.Context())
			}
			if err := failure(r); err != nil {
				return err
			}
			return renderState(a, a.athletes.Snapshot(), athleteColumns)
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "Only show athletes whose name contains this text")
	return cmd
}

func getAthleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one athlete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return renderOne(a, a.athletes.GetByID(cmd.Context(), id), id, athleteColumns)
		},
	}
}

type athleteFlags struct {
	name   string
	gender string
	price  string
	image  string
}

func (f *athleteFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Athlete name")
	cmd.Flags().StringVar(&f.gender, "gender", "", "Athlete gender")
	cmd.Flags().StringVar(&f.price, "price", "0", "Market price")
	cmd.Flags().StringVar(&f.image, "image", "", "Path of the image to upload")
}

// apply copies the flags the user set onto rec.
func (f *athleteFlags) apply(cmd *cobra.Command, rec *athlete.Athlete) error {
	if cmd.Flags().Changed("name") {
		rec.Name = f.name
	}
	if cmd.Flags().Changed("gender") {
		rec.Gender = f.gender
	}
	if cmd.Flags().Changed("price") || rec.ID == 0 {
		price, err := money.Parse(f.price)
		if err != nil {
			return fmt.Errorf("invalid price: %w", err)
		}
		rec.Price = price
	}
	return nil
}

func createAthleteCmd(a *app) *cobra.Command {
	f := &athleteFlags{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an athlete",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rec athlete.Athlete
			if err := f.apply(cmd, &rec); err != nil {
				return err
			}
			image, closeImage, err := openImage(f.image)
			if err != nil {
				return err
			}
			defer closeImage()

			r := a.athletes.Create(cmd.Context(), rec, image)
			if err := a.done(r, "Athlete %q created.", rec.Name); err != nil {
				return err
			}
			return renderState(a, a.athletes.Snapshot(), athleteColumns)
		},
	}
	f.register(cmd)
	return cmd
}

func updateAthleteCmd(a *app) *cobra.Command {
	f := &athleteFlags{}
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the fields given as flags on an athlete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := failure(a.athletes.LoadAll(cmd.Context())); err != nil {
				return err
			}
			rec, ok := a.athletes.Find(id)
			if !ok {
				return fmt.Errorf("no athlete with id %d", id)
			}
			if err := f.apply(cmd, &rec); err != nil {
				return err
			}
			image, closeImage, err := openImage(f.image)
			if err != nil {
				return err
			}
			defer closeImage()

			r := a.athletes.Update(cmd.Context(), rec, image)
			if err := a.done(r, "Athlete %d updated.", id); err != nil {
				return err
			}
			return renderState(a, a.athletes.Snapshot(), athleteColumns)
		},
	}
	f.register(cmd)
	return cmd
}

func deleteAthleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an athlete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.done(a.athletes.DeleteByID(cmd.Context(), id), "Athlete %d deleted.", id); err != nil {
				return err
			}
			return renderState(a, a.athletes.Snapshot(), athleteColumns)
		},
	}
}
