package main

import (
	"fmt"
	"strconv"

	"github.com/mauv0809/fighter-franchise/internal/result"
	"github.com/mauv0809/fighter-franchise/internal/venue"
	"github.com/spf13/cobra"
)

var venueColumns = columns[venue.Venue]{
	noun:    "venues",
	one:     "venue",
	headers: []string{"ID", "Name", "Capacity", "Image"},
	row: func(v venue.Venue) []string {
		return []string{strconv.Itoa(v.ID), v.Name, strconv.Itoa(v.Capacity), v.Image}
	},
}

func newVenuesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "venues",
		Aliases: []string{"venue"},
		Short:   "List and edit venues",
	}
	cmd.AddCommand(
		listVenuesCmd(a),
		getVenueCmd(a),
		createVenueCmd(a),
		updateVenueCmd(a),
		deleteVenueCmd(a),
	)
	return cmd
}

func listVenuesCmd(a *app) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all venues, or those whose name matches --search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var r result.Result[[]venue.Venue]
			if search != "" {
				r = a.venues.SearchByName(cmd.Context(), search)
			} else {
				r = a.venues.LoadAll(cmd.Context())
			}
			if err := failure(r); err != nil {
				return err
			}
			return renderState(a, a.venues.Snapshot(), venueColumns)
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "Only show venues whose name contains this text")
	return cmd
}

func getVenueCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one venue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return renderOne(a, a.venues.GetByID(cmd.Context(), id), id, venueColumns)
		},
	}
}

type venueFlags struct {
	name     string
	capacity int
	image    string
}

func (f *venueFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Venue name")
	cmd.Flags().IntVar(&f.capacity, "capacity", 0, "Number of seats")
	cmd.Flags().StringVar(&f.image, "image", "", "Path of the image to upload")
}

func (f *venueFlags) apply(cmd *cobra.Command, v *venue.Venue) {
	if cmd.Flags().Changed("name") {
		v.Name = f.name
	}
	if cmd.Flags().Changed("capacity") {
		v.Capacity = f.capacity
	}
}

func createVenueCmd(a *app) *cobra.Command {
	f := &venueFlags{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a venue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var v venue.Venue
			f.apply(cmd, &v)
			image, closeImage, err := openImage(f.image)
			if err != nil {
				return err
			}
			defer closeImage()

			if err := a.done(a.venues.Create(cmd.Context(), v, image), "Venue %q created.", v.Name); err != nil {
				return err
			}
			return renderState(a, a.venues.Snapshot(), venueColumns)
		},
	}
	f.register(cmd)
	return cmd
}

func updateVenueCmd(a *app) *cobra.Command {
	f := &venueFlags{}
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the fields given as flags on a venue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := failure(a.venues.LoadAll(cmd.Context())); err != nil {
				return err
			}
			v, ok := a.venues.Find(id)
			if !ok {
				return fmt.Errorf("no venue with id %d", id)
			}
			f.apply(cmd, &v)
			image, closeImage, err := openImage(f.image)
			if err != nil {
				return err
			}
			defer closeImage()

			if err := a.done(a.venues.Update(cmd.Context(), v, image), "Venue %d updated.", id); err != nil {
				return err
			}
			return renderState(a, a.venues.Snapshot(), venueColumns)
		},
	}
	f.register(cmd)
	return cmd
}

func deleteVenueCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a venue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.done(a.venues.DeleteByID(cmd.Context(), id), "Venue %d deleted.", id); err != nil {
				return err
			}
			return renderState(a, a.venues.Snapshot(), venueColumns)
		},
	}
}
