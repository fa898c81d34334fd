package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/internal/auth"
	config "task-tracker.com/task-tracker/internal/configs"
	"task-tracker.com/task-tracker/internal/constants"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo users and tasks into the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.New(cfg.DatabaseDSN)

		taskRepo := repository.NewTaskRepository(database)
		userRepo := repository.NewUserRepository(database)
		hasher := auth.NewPasswordHasher()

		ctx := context.Background()

		users := []struct {
			id       string
			username string
		}{
			{"demo-user-johnsmith", "johnsmith"},
			{"demo-user-maryjohns", "maryjohnson"},
			{"demo-user-alexbrown", "alexbrown"},
		}

		for _, u := range users {
			exists, err := userRepo.UsernameExists(ctx, u.username)
			if err != nil {
				return err
			}
			if exists {
				log.Printf("user %s already exists, skipping seed", u.username)
				return nil
			}

			hash, err := hasher.Hash("Password123!")
			if err != nil {
				return err
			}

			if err := userRepo.Create(ctx, &model.User{
				ID:           u.id,
				Username:     u.username,
				PasswordHash: hash,
			}); err != nil {
				return fmt.Errorf("failed to seed user %s: %w", u.username, err)
			}
		}

		due := time.Now().UTC().AddDate(0, 0, 7)
		tasks := []struct {
			description string
			ownerID     string
			status      constants.TaskStatus
		}{
			{"Develop user interface", users[0].id, constants.StatusInProgress},
			{"Write authorization logic", users[1].id, constants.StatusToDo},
			{"Conduct functionality testing", users[0].id, constants.StatusInReview},
			{"Prepare documentation", users[2].id, constants.StatusDone},
			{"Research new technologies", users[1].id, constants.StatusPaused},
		}

		for _, t := range tasks {
			ownerID := t.ownerID
			task, err := taskRepo.Create(ctx, t.description, &due, &ownerID)
			if err != nil {
				return fmt.Errorf("failed to seed task %q: %w", t.description, err)
			}

			// Tasks are born ToDo; walk the real transition path so seeded
			// data carries status history like production data would.
			if t.status != constants.StatusToDo {
				if _, err := taskRepo.ChangeStatus(ctx, task.ID, t.status); err != nil {
					return fmt.Errorf("failed to set status for %q: %w", t.description, err)
				}
			}
		}

		log.Printf("seeded %d users and %d tasks", len(users), len(tasks))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
