package admin

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	departmentApp "campusvoice/internal/application/department"
	departmentDTO "campusvoice/internal/application/department/dto"
	userApp "campusvoice/internal/application/user"
	userDTO "campusvoice/internal/application/user/dto"
	"campusvoice/internal/infrastructure/auth"
	"campusvoice/internal/infrastructure/config"
	"campusvoice/internal/infrastructure/database"
	"campusvoice/internal/infrastructure/repository"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/logger"
)

var env string

// NewUserCommand groups the operator commands for member accounts. They run
// as the system actor so the first admin can be created without a token.
func NewUserCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage campus members",
	}
	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.AddCommand(newUserCreateCommand(), newUserTokenCommand())
	return cmd
}

func NewDepartmentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "department",
		Short: "Manage departments",
	}
	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.AddCommand(newDepartmentCreateCommand())
	return cmd
}

type runtime struct {
	cfg *config.Config
	log logger.Interface
}

func setup() (*runtime, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return &runtime{cfg: cfg, log: logger.NewLogger().Named("admin")}, nil
}

func clock() time.Time { return time.Now().UTC() }

func newUserCreateCommand() *cobra.Command {
	var req userDTO.CreateUserRequest
	var issueToken bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a member account",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup()
			if err != nil {
				return err
			}
			defer database.Close()

			gdb := database.Get()
			svc := userApp.NewServiceDDD(
				repository.NewUserRepository(gdb, rt.log),
				repository.NewDepartmentRepository(gdb, rt.log),
				clock,
				rt.log,
			)
			u, err := svc.CreateUser(cmd.Context(), authorization.SystemActor, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s %s (%s)\n", u.Role, u.ID, u.DisplayName)

			if !issueToken {
				return nil
			}
			role, _ := authorization.ParseUserRole(u.Role)
			return printToken(cmd, rt.cfg, authorization.Actor{ID: u.ID, Role: role, Name: u.DisplayName})
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Full name (required)")
	cmd.Flags().StringVar(&req.Role, "role", "STUDENT", "ADMIN or STUDENT")
	cmd.Flags().StringVar(&req.DepartmentID, "department", "", "Department ID (admins only)")
	cmd.Flags().BoolVar(&issueToken, "token", false, "Also print an access token for the new member")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newUserTokenCommand() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for an existing member",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup()
			if err != nil {
				return err
			}
			defer database.Close()

			u, err := repository.NewUserRepository(database.Get(), rt.log).GetByID(cmd.Context(), userID)
			if err != nil {
				return err
			}
			return printToken(cmd, rt.cfg, u.Actor())
		},
	}

	cmd.Flags().StringVar(&userID, "id", "", "User ID (required)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newDepartmentCreateCommand() *cobra.Command {
	var req departmentDTO.CreateDepartmentRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a department",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup()
			if err != nil {
				return err
			}
			defer database.Close()

			svc := departmentApp.NewServiceDDD(repository.NewDepartmentRepository(database.Get(), rt.log), clock, rt.log)
			d, err := svc.CreateDepartment(cmd.Context(), authorization.SystemActor, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created department %s (%s)\n", d.ID, d.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Department name (required)")
	cmd.Flags().StringVar(&req.Code, "code", "", "Unique short code (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("code")

	return cmd
}

func printToken(cmd *cobra.Command, cfg *config.Config, actor authorization.Actor) error {
	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, cfg.Auth.JWT.AccessExpMinutes, clock)
	token, err := jwtSvc.Generate(actor)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "token (expires in %ds):\n%s\n", token.ExpiresIn, token.AccessToken)
	return nil
}
