package main

import (
	"fmt"

	"taskboard/internal/domain/models"

	"github.com/spf13/cobra"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Register, log in and manage the profile",
	}

	cmd.AddCommand(authRegisterCmd())
	cmd.AddCommand(authLoginCmd())
	cmd.AddCommand(authGoogleCmd())
	cmd.AddCommand(authLogoutCmd())
	cmd.AddCommand(authWhoamiCmd())
	cmd.AddCommand(authUpdateCmd())

	return cmd
}

func authRegisterCmd() *cobra.Command {
	var req models.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new user and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateForm(req); err != nil {
				return err
			}

			appl, err := newApplication()
			if err != nil {
				return err
			}

			user, err := appl.auth.Register(req.Username, req.Email, req.Password)
			if err != nil {
				return err
			}
			fmt.Printf("Registered and logged in as %s (%s)\n", user.Username, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&req.Email, "email", "e", "", "email address")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "password")

	return cmd
}

func authLoginCmd() *cobra.Command {
	var req models.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with email",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateForm(req); err != nil {
				return err
			}

			appl, err := newApplication()
			if err != nil {
				return err
			}

			user, err := appl.auth.Login(req.Email, req.Password)
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s (%s)\n", user.Username, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Email, "email", "e", "", "email address")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "password")

	return cmd
}

func authGoogleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "google",
		Short: "Log in through Google",
		RunE: func(cmd *cobra.Command, args []string) error {
			appl, err := newApplication()
			if err != nil {
				return err
			}

			// Failure reasons (cancelled, unauthorized domain, generic)
			// come through as distinct sentinel errors; they are shown,
			// never retried.
			user, err := appl.auth.LoginWithGoogle(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s (%s)\n", user.Username, user.Email)
			return nil
		},
	}
}

func authLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out; registered users are kept",
		RunE: func(cmd *cobra.Command, args []string) error {
			appl, err := newApplication()
			if err != nil {
				return err
			}

			appl.auth.Logout()
			fmt.Println("Logged out")
			return nil
		},
	}
}

func authWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			appl, err := newApplication()
			if err != nil {
				return err
			}

			user := appl.auth.CurrentUser()
			if user == nil {
				fmt.Println("Not logged in")
				return nil
			}
			fmt.Printf("%s (%s, provider: %s)\n", user.Username, user.Email, user.Provider)
			return nil
		},
	}
}

func authUpdateCmd() *cobra.Command {
	var update models.ProfileUpdate

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the logged-in user's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateForm(update); err != nil {
				return err
			}

			appl, err := newApplication()
			if err != nil {
				return err
			}

			appl.auth.UpdateProfile(update)
			if user := appl.auth.CurrentUser(); user != nil {
				fmt.Printf("Profile: %s (%s)\n", user.Username, user.Email)
			} else {
				fmt.Println("Not logged in; nothing updated")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&update.Username, "username", "u", "", "new username")
	cmd.Flags().StringVarP(&update.Email, "email", "e", "", "new email address")
	cmd.Flags().StringVar(&update.Avatar, "avatar", "", "new avatar URL")

	return cmd
}
