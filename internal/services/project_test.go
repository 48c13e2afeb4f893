package services

import (
	"errors"
	"testing"

	"github.com/atelierhq/atelier/backend/internal/models"
)

func TestProjectCreate(t *testing.T) {
	svc := NewProjectService(setupTestDB(t))

	project, err := svc.Create(&CreateProjectRequest{
		Title:       "Riverside Penthouse",
		Description: "Full refurbishment of a two-floor penthouse.",
		Location:    "Amsterdam",
		Type:        models.ProjectTypeResidential,
		Featured:    true,
		Images:      []string{"/uploads/a.jpg", "/uploads/b.jpg"},
		MainImage:   "/uploads/a.jpg",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if project.ID == 0 {
		t.Error("expected project to be persisted with an ID")
	}

	stored, err := svc.GetByID(project.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(stored.Images) != 2 || stored.Images[0] != "/uploads/a.jpg" {
		t.Errorf("image list not round-tripped: %v", stored.Images)
	}
	if stored.MainImage != "/uploads/a.jpg" {
		t.Errorf("unexpected main image %q", stored.MainImage)
	}
}

func TestProjectCreateRejectsBadImageSet(t *testing.T) {
	svc := NewProjectService(setupTestDB(t))

	base := CreateProjectRequest{
		Title:       "Harbour Office",
		Description: "Workspace redesign.",
		Type:        models.ProjectTypeCommercial,
	}

	noImages := base
	noImages.MainImage = "/uploads/a.jpg"
	if _, err := svc.Create(&noImages); !errors.Is(err, ErrNoImages) {
		t.Errorf("expected ErrNoImages, got %v", err)
	}

	badMain := base
	badMain.Images = []string{"/uploads/a.jpg"}
	badMain.MainImage = "/uploads/other.jpg"
	if _, err := svc.Create(&badMain); !errors.Is(err, ErrMainImageNotInSet) {
		t.Errorf("expected ErrMainImageNotInSet, got %v", err)
	}
}

func TestProjectUpdateFeaturedOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProjectService(db)

	project, err := svc.Create(&CreateProjectRequest{
		Title:       "Boutique Hotel Lobby",
		Description: "Lobby and bar area.",
		Type:        models.ProjectTypeHospitality,
		Images:      []string{"/uploads/lobby.jpg"},
		MainImage:   "/uploads/lobby.jpg",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	featured := true
	if _, err := svc.Update(project.ID, &UpdateProjectRequest{Featured: &featured}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	var stored models.Project
	if err := db.First(&stored, project.ID).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if !stored.Featured {
		t.Error("featured flag was not persisted")
	}
	if stored.Title != "Boutique Hotel Lobby" || stored.Description != "Lobby and bar area." {
		t.Error("fields not included in the update must stay untouched")
	}
	if len(stored.Images) != 1 || stored.MainImage != "/uploads/lobby.jpg" {
		t.Error("image fields must stay untouched by a featured-only update")
	}
}

func TestProjectUpdateRechecksImageInvariant(t *testing.T) {
	svc := NewProjectService(setupTestDB(t))

	project, err := svc.Create(&CreateProjectRequest{
		Title:       "Canal House",
		Description: "Private residence.",
		Type:        models.ProjectTypeResidential,
		Images:      []string{"/uploads/a.jpg", "/uploads/b.jpg"},
		MainImage:   "/uploads/b.jpg",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// dropping the image holding the main image must fail
	if _, err := svc.Update(project.ID, &UpdateProjectRequest{Images: []string{"/uploads/a.jpg"}}); !errors.Is(err, ErrMainImageNotInSet) {
		t.Errorf("expected ErrMainImageNotInSet, got %v", err)
	}

	// swapping both together is fine
	main := "/uploads/c.jpg"
	updated, err := svc.Update(project.ID, &UpdateProjectRequest{
		Images:    []string{"/uploads/c.jpg"},
		MainImage: &main,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.MainImage != "/uploads/c.jpg" {
		t.Errorf("unexpected main image %q", updated.MainImage)
	}

	// emptying the image list must fail regardless of main image
	if _, err := svc.Update(project.ID, &UpdateProjectRequest{Images: []string{}}); !errors.Is(err, ErrNoImages) {
		t.Errorf("expected ErrNoImages, got %v", err)
	}
}

func TestProjectListFilters(t *testing.T) {
	svc := NewProjectService(setupTestDB(t))

	seed := []CreateProjectRequest{
		{Title: "A", Description: "d", Type: models.ProjectTypeResidential, Featured: true,
			Images: []string{"/uploads/1.jpg"}, MainImage: "/uploads/1.jpg"},
		{Title: "B", Description: "d", Type: models.ProjectTypeCommercial,
			Images: []string{"/uploads/2.jpg"}, MainImage: "/uploads/2.jpg"},
		{Title: "C", Description: "d", Type: models.ProjectTypeResidential,
			Images: []string{"/uploads/3.jpg"}, MainImage: "/uploads/3.jpg"},
	}
	for i := range seed {
		if _, err := svc.Create(&seed[i]); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	byType, err := svc.List(&ProjectListRequest{Type: models.ProjectTypeResidential})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if byType.Total != 2 {
		t.Errorf("expected 2 residential projects, got %d", byType.Total)
	}

	featured := true
	byFeatured, err := svc.List(&ProjectListRequest{Featured: &featured})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if byFeatured.Total != 1 || byFeatured.Items[0].Title != "A" {
		t.Errorf("featured filter returned %d items", byFeatured.Total)
	}

	limited, err := svc.List(&ProjectListRequest{Limit: 2})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(limited.Items) != 2 || limited.PageSize != 2 {
		t.Errorf("limit shorthand not applied, got %d items", len(limited.Items))
	}
}

func TestProjectDelete(t *testing.T) {
	svc := NewProjectService(setupTestDB(t))

	project, err := svc.Create(&CreateProjectRequest{
		Title:       "To Remove",
		Description: "d",
		Type:        models.ProjectTypeResidential,
		Images:      []string{"/uploads/x.jpg"},
		MainImage:   "/uploads/x.jpg",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(project.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetByID(project.ID); err == nil {
		t.Error("deleted project should not be retrievable")
	}
	if err := svc.Delete(project.ID); err == nil {
		t.Error("deleting a missing project should fail")
	}
}
