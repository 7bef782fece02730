package seed

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/givehope/givehope/internal/app/models"
	"github.com/givehope/givehope/internal/app/store"
	"github.com/givehope/givehope/internal/config"
	"github.com/givehope/givehope/internal/pkg/auth"
)

// demoPassword is the login password for all demo accounts. It is hashed at
// seed time like any registered credential.
const demoPassword = "GiveHope123"

// CreateDefaultData provisions the default categories and the admin account,
// and optionally a set of demo organizations, donors, campaigns and
// donations. The admin credential comes from config and goes through the
// normal hash path; there is no alternate login branch for it.
func CreateDefaultData(st *store.Store, cfg *config.Config, lgr zerolog.Logger) error {
	if err := seedCategories(st); err != nil {
		return err
	}

	if err := seedAdmin(st, cfg, lgr); err != nil {
		return err
	}

	if cfg.Seed.DemoData {
		if err := seedDemoData(st, lgr); err != nil {
			return err
		}
	}

	lgr.Info().Msg("Default data check/creation finished")
	return nil
}

func seedCategories(st *store.Store) error {
	defaults := []store.NewCategory{
		{Name: "Education", Description: strPtr("Support educational initiatives"), ImageURL: strPtr("https://images.unsplash.com/photo-1499750310107-5fef28a66643")},
		{Name: "Health", Description: strPtr("Support health and medical initiatives"), ImageURL: strPtr("https://images.unsplash.com/photo-1577211908983-8d3738bb028c")},
		{Name: "Environment", Description: strPtr("Support environmental protection projects"), ImageURL: strPtr("https://images.unsplash.com/photo-1448375240586-882707db888b")},
		{Name: "Children", Description: strPtr("Support children's welfare programs"), ImageURL: strPtr("https://images.unsplash.com/photo-1594708767771-a5e9d3c87a67")},
		{Name: "Disaster Relief", Description: strPtr("Support disaster recovery efforts"), ImageURL: strPtr("https://images.unsplash.com/photo-1623600989906-6aae5aa131d4")},
	}

	for _, category := range defaults {
		if st.GetCategoryByName(category.Name) != nil {
			continue
		}
		if _, err := st.CreateCategory(category); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", category.Name, err)
		}
	}
	return nil
}

func seedAdmin(st *store.Store, cfg *config.Config, lgr zerolog.Logger) error {
	if st.GetUserByUsername(cfg.Admin.Username) != nil {
		lgr.Info().Msg("Admin user already exists, skipping creation")
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin, err := st.CreateUser(store.NewUser{
		Username: cfg.Admin.Username,
		Password: hashed,
		Email:    cfg.Admin.Email,
		FullName: cfg.Admin.FullName,
		Role:     models.RoleAdmin,
		Bio:      strPtr("System administrator with full access"),
	})
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	lgr.Info().Int64("adminID", admin.ID).Msg("Default admin user created")
	return nil
}

func seedDemoData(st *store.Store, lgr zerolog.Logger) error {
	hashed, err := auth.HashPassword(demoPassword)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	type demoUser struct {
		username string
		email    string
		fullName string
		role     models.RoleType
		bio      string
		approved bool
	}

	demoUsers := []demoUser{
		{"childrenfund", "info@childrenfund.org", "Children's Hope Foundation", models.RoleOrganization, "Supporting children in need across the world", true},
		{"greenearthorg", "contact@greenearth.org", "Green Earth Initiative", models.RoleOrganization, "Working for a cleaner and greener planet", true},
		{"neworganization", "new@organization.org", "New Relief Organization", models.RoleOrganization, "Recently established organization waiting for approval", false},
		{"johndoe", "john.doe@example.com", "John Doe", models.RoleDonor, "Regular donor supporting various causes", true},
		{"janesmith", "jane.smith@example.com", "Jane Smith", models.RoleDonor, "Passionate about helping children", true},
	}

	users := make(map[string]*models.User, len(demoUsers))
	for _, demo := range demoUsers {
		if existing := st.GetUserByUsername(demo.username); existing != nil {
			users[demo.username] = existing
			continue
		}

		user, err := st.CreateUser(store.NewUser{
			Username: demo.username,
			Password: hashed,
			Email:    demo.email,
			FullName: demo.fullName,
			Role:     demo.role,
			Bio:      strPtr(demo.bio),
		})
		if err != nil {
			return fmt.Errorf("failed to seed user %q: %w", demo.username, err)
		}

		// Organizations start unapproved; flip the seeded ones that
		// represent already-vetted accounts.
		if demo.role == models.RoleOrganization && demo.approved {
			approved := true
			if user, err = st.UpdateUser(user.ID, store.UserPatch{IsApproved: &approved}); err != nil {
				return err
			}
		}
		users[demo.username] = user
	}

	type demoCampaign struct {
		owner    string
		title    string
		desc     string
		goal     float64
		category string
	}

	demoCampaigns := []demoCampaign{
		{"childrenfund", "Build literacy points for mountain children", "Establish literacy centers in remote mountain villages with books, materials and trained volunteers.", 100000, "Education"},
		{"childrenfund", "Provide medicine for poor children in remote areas", "Bring essential medicines and healthcare support to children in villages with no medical facilities.", 50000, "Health"},
		{"greenearthorg", "Clean Water Initiative for Rural Communities", "Install water purification systems and wells in villages where clean water is scarce.", 80000, "Environment"},
		{"greenearthorg", "Emergency Relief for Flood Victims", "Deliver emergency food, clean water, hygiene kits and shelter to families displaced by floods.", 120000, "Disaster Relief"},
	}

	approved := true
	for _, demo := range demoCampaigns {
		owner := users[demo.owner]
		campaign := st.CreateCampaign(store.NewCampaign{
			Title:          demo.title,
			Description:    demo.desc,
			OrganizationID: owner.ID,
			GoalAmount:     demo.goal,
			Category:       demo.category,
			StartDate:      time.Now(),
			IsActive:       true,
		})

		if _, err := st.UpdateCampaign(campaign.ID, store.CampaignPatch{IsApproved: &approved}); err != nil {
			return err
		}

		// A couple of donations per campaign; the store keeps
		// currentAmount in step with the ledger.
		for _, donor := range []string{"johndoe", "janesmith"} {
			st.CreateDonation(store.NewDonation{
				CampaignID: campaign.ID,
				DonorID:    users[donor].ID,
				Amount:     2500,
				Message:    strPtr("Proud to support this important cause!"),
			})
		}
	}

	lgr.Info().Msg("Demo data seeded")
	return nil
}

func strPtr(s string) *string {
	return &s
}
