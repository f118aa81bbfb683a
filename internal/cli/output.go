package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/recipebook/recipe-book/internal/core/domain"
)

func newTable(w io.Writer, header ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	return tw
}

func printCategories(w io.Writer, cats []domain.Category) error {
	tw := newTable(w, "ID", "NAME", "DESCRIPTION")
	for _, c := range cats {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.ID, c.Name, c.Description)
	}
	return tw.Flush()
}

func printRecipes(w io.Writer, recipes []domain.Recipe) error {
	if len(recipes) == 0 {
		_, err := fmt.Fprintln(w, "no recipes")
		return err
	}
	tw := newTable(w, "ID", "TITLE", "DIFFICULTY", "MINUTES", "SERVINGS", "AUTHOR")
	for _, r := range recipes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n", r.ID, r.Title, r.Difficulty, r.CookingTime, r.Servings, r.AuthorName)
	}
	return tw.Flush()
}

func printRecipe(w io.Writer, r *domain.Recipe) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "Title:\t%s\n", r.Title)
	if r.Description != "" {
		fmt.Fprintf(tw, "Description:\t%s\n", r.Description)
	}
	fmt.Fprintf(tw, "Category:\t%s\n", r.CategoryID)
	fmt.Fprintf(tw, "Cooking time:\t%d min\n", r.CookingTime)
	fmt.Fprintf(tw, "Servings:\t%d\n", r.Servings)
	fmt.Fprintf(tw, "Difficulty:\t%s\n", r.Difficulty)
	fmt.Fprintf(tw, "Author:\t%s\n", r.AuthorName)
	if r.Image != "" {
		fmt.Fprintf(tw, "Image:\tattached\n")
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.Ingredients) > 0 {
		fmt.Fprintln(w, "\nIngredients:")
		for _, ing := range r.Ingredients {
			fmt.Fprintf(w, "  - %s\n", ing)
		}
	}
	if steps := r.Steps(); len(steps) > 0 {
		fmt.Fprintln(w, "\nInstructions:")
		for i, s := range steps {
			fmt.Fprintf(w, "  %d. %s\n", i+1, s)
		}
	}
	return nil
}
