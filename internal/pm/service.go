package pm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"plantmate/internal/model"
	"plantmate/internal/seed"
)

// Remote collection names. These are the <collection> path segments of the
// backend API and do not always match the local store keys.
const (
	collectionSpaces     = "spaces"
	collectionUserPlants = "user-plants"
	collectionCatalog    = "plants"
	collectionWaterTasks = "dashboard/water-tasks"

	waterTasksField = "waterTasks"
)

// DefaultSnooze is how far a snoozed water task is pushed out.
const DefaultSnooze = 2 * time.Hour

// PlantService coordinates the store, the remote fetcher, and the
// recommendation engine to implement every user-facing operation.
// Loads are best-effort (remote, then cache, then seed); mutations are
// synchronous, local-only, and persist the full collection snapshot.
type PlantService struct {
	store   Store
	fetcher Fetcher
	engine  *Engine
	logger  Logger
	clock   Clock
	idgen   IDGenerator
}

// NewPlantService creates a PlantService with the provided dependencies.
func NewPlantService(store Store, fetcher Fetcher, engine *Engine, logger Logger, clock Clock, idgen IDGenerator) *PlantService {
	return &PlantService{
		store:   store,
		fetcher: fetcher,
		engine:  engine,
		logger:  logger,
		clock:   clock,
		idgen:   idgen,
	}
}

// CurrentUser returns the locally stored profile, if any. The service only
// ever reads it; login writes it.
func (s *PlantService) CurrentUser() (model.User, bool) {
	return ReadValue[model.User](s.store, KeyUser)
}

// Spaces loads the user's spaces.
func (s *PlantService) Spaces(ctx context.Context) Result[model.Space] {
	return LoadCollection(ctx, s.store, KeySpaces, collectionSpaces, "", s.fetcher, seed.Spaces(), s.logger)
}

// Catalog loads the read-only plant catalog.
func (s *PlantService) Catalog(ctx context.Context) Result[model.CatalogPlant] {
	return LoadCollection(ctx, s.store, KeyCatalog, collectionCatalog, "", s.fetcher, seed.Catalog(), s.logger)
}

// UserPlants loads the user's ownership records. There is no dummy seed for
// owned plants; a fresh profile starts empty.
func (s *PlantService) UserPlants(ctx context.Context) Result[model.UserPlant] {
	return LoadCollection(ctx, s.store, KeyUserPlants, collectionUserPlants, "", s.fetcher, []model.UserPlant{}, s.logger)
}

// WaterTasks loads the watering dashboard.
func (s *PlantService) WaterTasks(ctx context.Context) Result[model.WaterTask] {
	return LoadCollection(ctx, s.store, KeyWaterTasks, collectionWaterTasks, waterTasksField, s.fetcher, seed.WaterTasks(s.clock.Now()), s.logger)
}

// AddSpace validates the input, synthesizes an id, prepends the new space to
// the collection, and persists the snapshot. Invalid input is rejected with a
// *ValidationError and nothing is persisted.
func (s *PlantService) AddSpace(input SpaceInput) (*model.Space, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := checkStruct(input); err != nil {
		return nil, err
	}

	sp := model.Space{
		ID:            s.idgen.New(),
		Name:          strings.TrimSpace(input.Name),
		Type:          input.Type,
		Direction:     input.Direction,
		SunlightHours: input.SunlightHours,
		AreaSqM:       input.AreaSqM,
		Notes:         input.Notes,
	}

	next := append([]model.Space{sp}, ReadCollection[model.Space](s.store, KeySpaces)...)
	if err := WriteCollection(s.store, KeySpaces, next); err != nil {
		return nil, fmt.Errorf("persisting spaces: %w", err)
	}

	s.logger.Info("space added", "id", sp.ID, "name", sp.Name)
	return &sp, nil
}

// UpdateSpace merges the patch onto the space with the given id and persists
// the updated collection. A missing id fails with a *NotFoundError.
func (s *PlantService) UpdateSpace(id string, patch SpacePatch) (*model.Space, error) {
	if err := checkPatch(patch); err != nil {
		return nil, err
	}

	spaces := ReadCollection[model.Space](s.store, KeySpaces)
	idx := -1
	for i, sp := range spaces {
		if sp.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, &NotFoundError{Entity: "space", ID: id}
	}

	sp := spaces[idx]
	if patch.Name != nil {
		sp.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Type != nil {
		sp.Type = *patch.Type
	}
	if patch.Direction != nil {
		sp.Direction = *patch.Direction
	}
	if patch.SunlightHours != nil {
		sp.SunlightHours = *patch.SunlightHours
	}
	if patch.AreaSqM != nil {
		sp.AreaSqM = *patch.AreaSqM
	}
	if patch.Notes != nil {
		sp.Notes = *patch.Notes
	}
	spaces[idx] = sp

	if err := WriteCollection(s.store, KeySpaces, spaces); err != nil {
		return nil, fmt.Errorf("persisting spaces: %w", err)
	}

	s.logger.Info("space updated", "id", id)
	return &sp, nil
}

// RemoveSpace filters out the space with the given id and persists the
// result. Removing a nonexistent id is a no-op, not an error.
func (s *PlantService) RemoveSpace(id string) ([]model.Space, error) {
	spaces := ReadCollection[model.Space](s.store, KeySpaces)
	next := make([]model.Space, 0, len(spaces))
	removed := false
	for _, sp := range spaces {
		if sp.ID == id {
			removed = true
			continue
		}
		next = append(next, sp)
	}
	if !removed {
		return spaces, nil
	}

	if err := WriteCollection(s.store, KeySpaces, next); err != nil {
		return nil, fmt.Errorf("persisting spaces: %w", err)
	}

	s.logger.Info("space removed", "id", id)
	return next, nil
}

// AddPlant validates the input, checks that the space and catalog slug exist
// at creation time, and prepends the new record. Referential integrity is
// only enforced here; later reads tolerate dangling references.
func (s *PlantService) AddPlant(ctx context.Context, input PlantInput) (*model.UserPlant, error) {
	if err := checkStruct(input); err != nil {
		return nil, err
	}

	if _, ok := IndexByID(s.Spaces(ctx).Items)[input.SpaceID]; !ok {
		return nil, &ValidationError{Field: "space_id", Message: fmt.Sprintf("space %q does not exist", input.SpaceID)}
	}
	if _, ok := IndexBySlug(s.Catalog(ctx).Items)[input.PlantSlug]; !ok {
		return nil, &ValidationError{Field: "plant_id", Message: fmt.Sprintf("catalog plant %q does not exist", input.PlantSlug)}
	}

	up := model.UserPlant{
		ID:        s.idgen.New(),
		UserID:    input.UserID,
		SpaceID:   input.SpaceID,
		PlantSlug: input.PlantSlug,
		Nickname:  strings.TrimSpace(input.Nickname),
		Status:    "active",
		CreatedAt: s.clock.Now(),
	}

	next := append([]model.UserPlant{up}, ReadCollection[model.UserPlant](s.store, KeyUserPlants)...)
	if err := WriteCollection(s.store, KeyUserPlants, next); err != nil {
		return nil, fmt.Errorf("persisting user plants: %w", err)
	}

	s.logger.Info("plant added", "id", up.ID, "slug", up.PlantSlug, "space", up.SpaceID)
	return &up, nil
}

// RemovePlant filters out the record with the given id. Removing a
// nonexistent id is a no-op.
func (s *PlantService) RemovePlant(id string) ([]model.UserPlant, error) {
	plants := ReadCollection[model.UserPlant](s.store, KeyUserPlants)
	next := make([]model.UserPlant, 0, len(plants))
	removed := false
	for _, up := range plants {
		if up.ID == id {
			removed = true
			continue
		}
		next = append(next, up)
	}
	if !removed {
		return plants, nil
	}

	if err := WriteCollection(s.store, KeyUserPlants, next); err != nil {
		return nil, fmt.Errorf("persisting user plants: %w", err)
	}

	s.logger.Info("plant removed", "id", id)
	return next, nil
}

// Plants returns the user's plants enriched with catalog and space data,
// optionally filtered by a case-insensitive query over nickname, common name,
// and scientific name.
func (s *PlantService) Plants(ctx context.Context, query string) []EnrichedPlant {
	enriched := EnrichUserPlants(s.UserPlants(ctx).Items, s.Catalog(ctx).Items, s.Spaces(ctx).Items)

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return enriched
	}

	out := make([]EnrichedPlant, 0, len(enriched))
	for _, e := range enriched {
		if strings.Contains(strings.ToLower(e.Nickname), q) ||
			strings.Contains(strings.ToLower(e.CommonName), q) ||
			strings.Contains(strings.ToLower(e.ScientificName), q) {
			out = append(out, e)
		}
	}
	return out
}

// Suggest ranks catalog plants for the given space. An unset or unknown
// space id yields an empty result rather than an error.
func (s *PlantService) Suggest(ctx context.Context, userID, spaceID string, limit int) []model.Suggestion {
	if spaceID == "" {
		return []model.Suggestion{}
	}

	spaces := IndexByID(s.Spaces(ctx).Items)
	sp, ok := spaces[spaceID]
	if !ok {
		return []model.Suggestion{}
	}

	owned := make([]model.UserPlant, 0)
	for _, up := range s.UserPlants(ctx).Items {
		if userID == "" || up.UserID == userID {
			owned = append(owned, up)
		}
	}

	return s.engine.Suggest(&sp, s.Catalog(ctx).Items, owned, limit)
}

// DoneTask removes a completed task from the dashboard and persists the
// remaining collection. Unknown ids are a no-op.
func (s *PlantService) DoneTask(ctx context.Context, id string) ([]model.WaterTask, error) {
	tasks := s.WaterTasks(ctx).Items
	next := make([]model.WaterTask, 0, len(tasks))
	removed := false
	for _, t := range tasks {
		if t.ID == id {
			removed = true
			continue
		}
		next = append(next, t)
	}
	if !removed {
		return tasks, nil
	}

	if err := WriteCollection(s.store, KeyWaterTasks, next); err != nil {
		return nil, fmt.Errorf("persisting water tasks: %w", err)
	}
	return next, nil
}

// SnoozeTask pushes the task's due time forward by d (DefaultSnooze when
// d <= 0). A missing task fails with a *NotFoundError.
func (s *PlantService) SnoozeTask(ctx context.Context, id string, d time.Duration) ([]model.WaterTask, error) {
	if d <= 0 {
		d = DefaultSnooze
	}

	tasks := s.WaterTasks(ctx).Items
	found := false
	for i, t := range tasks {
		if t.ID == id {
			tasks[i].DueAt = s.clock.Now().Add(d)
			found = true
			break
		}
	}
	if !found {
		return nil, &NotFoundError{Entity: "water task", ID: id}
	}

	if err := WriteCollection(s.store, KeyWaterTasks, tasks); err != nil {
		return nil, fmt.Errorf("persisting water tasks: %w", err)
	}
	return tasks, nil
}
