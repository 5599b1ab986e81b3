// cmd/admin/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/issuetrackhq/issuetrack/internal/config"
	"github.com/issuetrackhq/issuetrack/internal/model"
	"github.com/issuetrackhq/issuetrack/internal/repository"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	auditEntityType string
	auditEntityID   string
	auditLimit      int
)

func init() {
	auditCmd.Flags().StringVarP(&auditEntityType, "entity-type", "t", "", "Filter by entity type (e.g. Issue, Organization)")
	auditCmd.Flags().StringVarP(&auditEntityID, "entity-id", "e", "", "Filter by entity id")
	auditCmd.Flags().IntVarP(&auditLimit, "limit", "n", 20, "Maximum entries to show")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(approveRequestCmd)
	rootCmd.AddCommand(rejectRequestCmd)
}

var rootCmd = &cobra.Command{
	Use:   "admin",
	Short: "Admin is the operational CLI for the issue tracker backend",
	Long:  `Admin runs schema migrations, inspects the audit trail, and moderates contribution requests.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long:  `Create or update all tables, extensions, and indexes.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := openDatabase()

		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS citext`).Error; err != nil {
			log.Fatalf("Failed to create citext extension: %v", err)
		}
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
			log.Fatalf("Failed to create pgcrypto extension: %v", err)
		}

		err := db.AutoMigrate(
			&model.User{},
			&model.Organization{},
			&model.Membership{},
			&model.Invitation{},
			&model.Issue{},
			&model.ContributionRequest{},
			&model.ContributionProof{},
			&model.AuditLog{},
		)
		if err != nil {
			log.Fatalf("Failed to migrate schema: %v", err)
		}

		// AutoMigrate cannot express a partial index. Only one pending
		// invitation may exist per (organization, user) pair.
		err = db.Exec(`
			CREATE UNIQUE INDEX IF NOT EXISTS idx_invitation_pending
			ON invitations (organization_id, invited_user_id)
			WHERE status = 'PENDING'
		`).Error
		if err != nil {
			log.Fatalf("Failed to create pending invitation index: %v", err)
		}

		fmt.Println("Schema migrated successfully")
	},
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show recent audit trail entries",
	Long:  `Query the audit trail, newest first, optionally filtered by entity.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := openDatabase()
		repo := repository.NewAuditLogRepository(db)

		params := repository.AuditQueryParams{
			EntityType: auditEntityType,
			Limit:      auditLimit,
		}
		if auditEntityID != "" {
			id, err := uuid.Parse(auditEntityID)
			if err != nil {
				log.Fatalf("Invalid entity id: %v", err)
			}
			params.EntityID = &id
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		entries, total, err := repo.Query(ctx, params)
		if err != nil {
			log.Fatalf("Failed to query audit trail: %v", err)
		}

		fmt.Printf("Showing %d of %d entries\n\n", len(entries), total)
		for _, entry := range entries {
			fmt.Printf("%s  %-35s %s/%s\n",
				entry.CreatedAt.Format(time.RFC3339),
				entry.Action,
				entry.EntityType,
				entry.EntityID,
			)
			fmt.Printf("  performed by: %s\n", entry.PerformedByID)
			if len(entry.OldValue) > 0 {
				fmt.Printf("  old: %v\n", entry.OldValue)
			}
			if len(entry.NewValue) > 0 {
				fmt.Printf("  new: %v\n", entry.NewValue)
			}
			fmt.Println()
		}
	},
}

var approveRequestCmd = &cobra.Command{
	Use:   "approve-request [request-id]",
	Short: "Approve a contribution request",
	Long:  `Mark a contribution request as approved so the requester may submit proofs.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		moderateRequest(args[0], model.RequestApproved)
	},
}

var rejectRequestCmd = &cobra.Command{
	Use:   "reject-request [request-id]",
	Short: "Reject a contribution request",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		moderateRequest(args[0], model.RequestRejected)
	},
}

func moderateRequest(rawID string, status model.ContributionRequestStatus) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		log.Fatalf("Invalid request id: %v", err)
	}

	db := openDatabase()
	repo := repository.NewContributionRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := repo.UpdateRequestStatus(ctx, id, status); err != nil {
		log.Fatalf("Failed to update request: %v", err)
	}

	fmt.Printf("Request %s marked %s\n", id, status)
}

func openDatabase() *gorm.DB {
	cfg := config.Load()

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return db
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
