package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/recipebook/recipe-book/internal/core/domain"
)

// recipeFlags binds the content fields shared by add and edit.
type recipeFlags struct {
	title        string
	description  string
	cookingTime  int
	servings     int
	difficulty   string
	categoryID   string
	ingredients  []string
	instructions []string
}

func (f *recipeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Recipe title")
	cmd.Flags().StringVar(&f.description, "description", "", "Short description")
	cmd.Flags().IntVar(&f.cookingTime, "time", 0, "Cooking time in minutes")
	cmd.Flags().IntVar(&f.servings, "servings", 0, "Number of servings")
	cmd.Flags().StringVar(&f.difficulty, "difficulty", "", "easy, medium or hard")
	cmd.Flags().StringVar(&f.categoryID, "category", "", "Category id")
	cmd.Flags().StringArrayVar(&f.ingredients, "ingredient", nil, "Ingredient (repeatable)")
	cmd.Flags().StringArrayVar(&f.instructions, "step", nil, "Instruction step (repeatable)")
}

func (f *recipeFlags) draft() domain.RecipeDraft {
	return domain.RecipeDraft{
		Title:        f.title,
		Description:  f.description,
		CookingTime:  f.cookingTime,
		Servings:     f.servings,
		Difficulty:   domain.Difficulty(f.difficulty),
		CategoryID:   f.categoryID,
		Ingredients:  f.ingredients,
		Instructions: strings.Join(f.instructions, "\n"),
	}
}

// patch sets only the fields whose flags were given.
func (f *recipeFlags) patch(cmd *cobra.Command) domain.RecipePatch {
	var p domain.RecipePatch
	changed := cmd.Flags().Changed
	if changed("title") {
		p.Title = &f.title
	}
	if changed("description") {
		p.Description = &f.description
	}
	if changed("time") {
		p.CookingTime = &f.cookingTime
	}
	if changed("servings") {
		p.Servings = &f.servings
	}
	if changed("difficulty") {
		d := domain.Difficulty(f.difficulty)
		p.Difficulty = &d
	}
	if changed("category") {
		p.CategoryID = &f.categoryID
	}
	if changed("ingredient") {
		p.Ingredients = &f.ingredients
	}
	if changed("step") {
		s := strings.Join(f.instructions, "\n")
		p.Instructions = &s
	}
	return p
}

func newRecipesCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "recipes",
		Aliases: []string{"recipe"},
		Short:   "Browse and edit recipes",
	}
	cmd.AddCommand(
		newRecipesListCommand(rt),
		newRecipesShowCommand(rt),
		newRecipesAddCommand(rt),
		newRecipesEditCommand(rt),
		newRecipesRemoveCommand(rt),
		newRecipesBookmarkCommand(rt),
		newRecipesSavedCommand(rt),
		newRecipesShareCommand(rt),
		newRecipesImageCommand(rt),
	)
	return cmd
}

func newRecipesListCommand(rt *runtime) *cobra.Command {
	var (
		filter     domain.RecipeFilter
		difficulty string
		mine       bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			filter.Difficulty = domain.Difficulty(difficulty)
			if mine {
				sess, err := rt.requireSession(ctx)
				if err != nil {
					return err
				}
				filter.UserID = sess.User.ID
			}
			recipes, err := rt.svc.Recipes.List(ctx, filter)
			if err != nil {
				return err
			}
			return printRecipes(cmd.OutOrStdout(), recipes)
		},
	}
	cmd.Flags().StringVar(&filter.Search, "search", "", "Case-insensitive title search")
	cmd.Flags().StringVar(&filter.CategoryID, "category", "", "Only this category")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Only this difficulty")
	cmd.Flags().StringVar(&filter.UserID, "user", "", "Only recipes by this user id")
	cmd.Flags().BoolVar(&mine, "mine", false, "Only my recipes")
	return cmd
}

func newRecipesShowCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := rt.svc.Recipes.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printRecipe(cmd.OutOrStdout(), r)
		},
	}
}

func newRecipesAddCommand(rt *runtime) *cobra.Command {
	var f recipeFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a recipe authored by the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			sess, err := rt.session(ctx)
			if err != nil {
				return err
			}
			r, err := rt.svc.Recipes.Create(ctx, sess, f.draft())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created recipe %s\n", r.ID)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newRecipesEditCommand(rt *runtime) *cobra.Command {
	var f recipeFlags
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the given fields of a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := rt.svc.Recipes.Update(cmd.Context(), args[0], f.patch(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated recipe %s\n", r.ID)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newRecipesRemoveCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.svc.Recipes.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted recipe %s\n", args[0])
			return nil
		},
	}
}

func newRecipesBookmarkCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "bookmark <id>",
		Short: "Save or unsave a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sess, err := rt.session(ctx)
			if err != nil {
				return err
			}
			saved, err := rt.svc.Recipes.ToggleBookmark(ctx, sess, args[0])
			if err != nil {
				return err
			}
			if saved {
				fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s from saved recipes\n", args[0])
			}
			return nil
		},
	}
}

func newRecipesSavedCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "saved",
		Short: "List saved recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			sess, err := rt.session(ctx)
			if err != nil {
				return err
			}
			recipes, err := rt.svc.Recipes.Bookmarked(ctx, sess)
			if err != nil {
				return err
			}
			return printRecipes(cmd.OutOrStdout(), recipes)
		},
	}
}

func newRecipesShareCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "share <id>",
		Short: "Print a shareable link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			link, err := rt.svc.Recipes.ShareLink(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), link)
			return nil
		},
	}
}

func newRecipesImageCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "image <id> <file>",
		Short: "Attach an image file to a recipe",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			data, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			url, err := rt.svc.Recipes.AttachImage(ctx, args[0], data)
			if err != nil {
				return err
			}
			if _, err := rt.svc.Recipes.Update(ctx, args[0], domain.RecipePatch{Image: &url}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "attached image to %s\n", args[0])
			return nil
		},
	}
}
