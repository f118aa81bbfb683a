package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recipebook/recipe-book/internal/core/domain"
	"github.com/recipebook/recipe-book/internal/core/ports"
)

func newRegisterCommand(rt *runtime) *cobra.Command {
	var in ports.RegisterInput
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pw, err := getPassword(in.Password, cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			in.Password = pw

			sess, err := rt.svc.Auth.Register(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registered and logged in as %s\n", sess.User.Username)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "Display name")
	cmd.Flags().StringVar(&in.Username, "username", "", "Login name")
	cmd.Flags().StringVar(&in.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&in.Password, "password", "", "Password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLoginCommand(rt *runtime) *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Log in and remember the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := getPassword(password, cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			sess, err := rt.svc.Auth.Login(cmd.Context(), args[0], pw)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s\n", sess.User.Username)
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	return cmd
}

func newLogoutCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the active session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := rt.svc.Auth.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newWhoamiCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := rt.session(cmd.Context())
			if err != nil {
				return err
			}
			if sess == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "not logged in")
				return nil
			}
			printUser(cmd, sess.User)
			return nil
		},
	}
}

func newProfileCommand(rt *runtime) *cobra.Command {
	var (
		in     ports.ProfileInput
		avatar string
	)
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Edit the profile of the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			sess, err := rt.requireSession(ctx)
			if err != nil {
				return err
			}

			// Unset flags keep the current values.
			u := sess.User
			if !cmd.Flags().Changed("name") {
				in.Name = u.Name
			}
			if !cmd.Flags().Changed("username") {
				in.Username = u.Username
			}
			if !cmd.Flags().Changed("email") {
				in.Email = u.Email
			}
			if cmd.Flags().Changed("avatar") {
				in.Avatar = &avatar
			}

			next, err := rt.svc.Auth.UpdateProfile(ctx, sess, in)
			if err != nil {
				return err
			}
			printUser(cmd, next.User)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "Display name")
	cmd.Flags().StringVar(&in.Username, "username", "", "Login name")
	cmd.Flags().StringVar(&in.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar URL")
	return cmd
}

func printUser(cmd *cobra.Command, u domain.User) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s (@%s) <%s>\n", u.Name, u.Username, u.Email)
}
