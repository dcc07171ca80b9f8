package listings

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nestlist/nestlist/cmd/cli/output"
	"github.com/nestlist/nestlist/cmd/cli/root"
	"github.com/nestlist/nestlist/cmd/cli/store"
	"github.com/nestlist/nestlist/internal/models"
	"github.com/nestlist/nestlist/internal/repo"
)

// ==========================
// CLI Command Init
// ==========================
func init() {
	propertiesCmd := &cobra.Command{
		Use:   "properties",
		Short: "Manage property listings",
	}
	propertiesCmd.AddCommand(
		&cobra.Command{Use: "list", Short: "List all properties", RunE: runPropertiesList},
		propertiesAddCmd(),
		&cobra.Command{Use: "delete <id>", Short: "Delete a property by id", Args: cobra.ExactArgs(1), RunE: runPropertiesDelete},
	)

	roommatesCmd := &cobra.Command{
		Use:   "roommates",
		Short: "Manage roommate listings",
	}
	roommatesCmd.AddCommand(
		&cobra.Command{Use: "list", Short: "List all roommates", RunE: runRoommatesList},
		roommatesAddCmd(),
		&cobra.Command{Use: "delete <id>", Short: "Delete a roommate by id", Args: cobra.ExactArgs(1), RunE: runRoommatesDelete},
	)

	root.GetRoot().AddCommand(propertiesCmd, roommatesCmd)
}

func cliContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 15*time.Second)
}

// ==========================
// Properties
// ==========================

func runPropertiesList(cmd *cobra.Command, args []string) error {
	ctx, cancel := cliContext()
	defer cancel()

	db, closeFn, err := store.Open(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	properties, err := repo.NewPropertyRepo(db).List(ctx)
	if err != nil {
		return err
	}

	rows := make([][]interface{}, 0, len(properties))
	for _, p := range properties {
		rows = append(rows, []interface{}{p.ID.Hex(), p.Title, p.Price, strings.Join(p.Images, ", ")})
	}
	output.RenderTable([]string{"ID", "Title", "Price", "Images"}, rows)
	return nil
}

func propertiesAddCmd() *cobra.Command {
	var title, description, image string
	var price int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a property listing",
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" {
				return fmt.Errorf("title is required")
			}

			ctx, cancel := cliContext()
			defer cancel()

			db, closeFn, err := store.Open(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			property := &models.Property{Title: title, Description: description, Price: price}
			if image != "" {
				property.Images = []string{image}
			}

			id, err := repo.NewPropertyRepo(db).Create(ctx, property)
			if err != nil {
				return err
			}

			fmt.Println("Created property", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Listing title")
	cmd.Flags().StringVar(&description, "description", "", "Listing description")
	cmd.Flags().IntVar(&price, "price", 0, "Price")
	cmd.Flags().StringVar(&image, "image", "", "Image URL")

	return cmd
}

func runPropertiesDelete(cmd *cobra.Command, args []string) error {
	ctx, cancel := cliContext()
	defer cancel()

	db, closeFn, err := store.Open(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := repo.NewPropertyRepo(db).Delete(ctx, args[0]); err != nil {
		return err
	}

	fmt.Println("Deleted property", args[0])
	return nil
}

// ==========================
// Roommates
// ==========================

func runRoommatesList(cmd *cobra.Command, args []string) error {
	ctx, cancel := cliContext()
	defer cancel()

	db, closeFn, err := store.Open(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	roommates, err := repo.NewRoommateRepo(db).List(ctx)
	if err != nil {
		return err
	}

	rows := make([][]interface{}, 0, len(roommates))
	for _, m := range roommates {
		rows = append(rows, []interface{}{m.ID.Hex(), m.Name, strconv.Itoa(m.Age), m.PropertyTitle})
	}
	output.RenderTable([]string{"ID", "Name", "Age", "Property"}, rows)
	return nil
}

func roommatesAddCmd() *cobra.Command {
	var name, image, propertyTitle string
	var age int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a roommate listing",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("name is required")
			}

			ctx, cancel := cliContext()
			defer cancel()

			db, closeFn, err := store.Open(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			roommate := &models.Roommate{Name: name, Age: age, Image: image, PropertyTitle: propertyTitle}

			id, err := repo.NewRoommateRepo(db).Create(ctx, roommate)
			if err != nil {
				return err
			}

			fmt.Println("Created roommate", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Roommate name")
	cmd.Flags().IntVar(&age, "age", 0, "Age")
	cmd.Flags().StringVar(&image, "image", "", "Image URL")
	cmd.Flags().StringVar(&propertyTitle, "property-title", "", "Free-text property title label")

	return cmd
}

func runRoommatesDelete(cmd *cobra.Command, args []string) error {
	ctx, cancel := cliContext()
	defer cancel()

	db, closeFn, err := store.Open(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := repo.NewRoommateRepo(db).Delete(ctx, args[0]); err != nil {
		return err
	}

	fmt.Println("Deleted roommate", args[0])
	return nil
}
