package service

import (
	"fmt"

	"tableside/internal/domain"
	"tableside/internal/geometry"
)

// MarginDistance is the service-access buffer, in grid units, kept between
// every table and the floor-plan edges.
const MarginDistance = 2

const (
	DirectionUp    = "up"
	DirectionDown  = "down"
	DirectionLeft  = "left"
	DirectionRight = "right"
)

func placementRect(p domain.TablePlacement) geometry.Rect {
	return geometry.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// ValidatePlacement checks a candidate rectangle against the plan bounds,
// the edge margin and every other active placement. excludingTableID skips
// one table (used when moving an existing table against itself); pass 0 to
// check against all. An empty result means the candidate is valid.
func ValidatePlacement(plan *domain.FloorPlan, candidate geometry.Rect, excludingTableID int) []string {
	var violations []string
	if !geometry.InBounds(candidate, plan.Width, plan.Height) {
		violations = append(violations, domain.ViolationOutOfBounds)
	}
	if !geometry.InInsetBounds(candidate, plan.Width, plan.Height, MarginDistance) {
		violations = append(violations, domain.ViolationTooCloseToEdge)
	}
	for _, other := range plan.Placements {
		if !other.IsActive || other.TableID == excludingTableID {
			continue
		}
		if geometry.Overlaps(candidate, placementRect(other)) {
			violations = append(violations, domain.ViolationOverlapsTable(other.TableID))
		}
	}
	return violations
}

// LayoutService owns every mutation of table placements for a floor plan.
// All operations validate first and commit only when no rule is violated.
type LayoutService struct {
	plans FloorPlanRepository
}

func NewLayoutService(plans FloorPlanRepository) *LayoutService {
	return &LayoutService{plans: plans}
}

func (s *LayoutService) AddTable(planID int, placement domain.TablePlacement) (*domain.TablePlacement, error) {
	if placement.Width <= 0 || placement.Height <= 0 {
		return nil, &domain.ValidationError{Msg: "placement width and height must be positive"}
	}
	if placement.Seats <= 0 {
		return nil, &domain.ValidationError{Msg: "placement must seat at least one guest"}
	}
	if !placement.Shape.Known() {
		return nil, &domain.ValidationError{Msg: fmt.Sprintf("unknown table shape %q", placement.Shape)}
	}

	plan, err := s.plans.GetFloorPlan(planID)
	if err != nil {
		return nil, fmt.Errorf("failed to load floor plan %d: %w", planID, err)
	}

	if violations := ValidatePlacement(plan, placementRect(placement), 0); len(violations) > 0 {
		return nil, &domain.PositionError{Violations: violations}
	}

	placement.FloorPlanID = planID
	placement.IsActive = true
	if err := s.plans.InsertPlacement(&placement); err != nil {
		return nil, fmt.Errorf("failed to insert placement for table %d: %w", placement.TableID, err)
	}
	return &placement, nil
}

func (s *LayoutService) Move(planID, tableID int, direction string, step int) (*domain.TablePlacement, error) {
	if step <= 0 {
		return nil, &domain.ValidationError{Msg: "step must be positive"}
	}

	plan, placement, err := s.loadPlacement(planID, tableID)
	if err != nil {
		return nil, err
	}

	candidate := placementRect(*placement)
	switch direction {
	case DirectionUp:
		candidate.Y -= step
	case DirectionDown:
		candidate.Y += step
	case DirectionLeft:
		candidate.X -= step
	case DirectionRight:
		candidate.X += step
	default:
		return nil, &domain.ValidationError{Msg: fmt.Sprintf("unknown direction %q", direction)}
	}
	candidate = geometry.Clamp(candidate, plan.Width, plan.Height)

	return s.commitPosition(plan, placement, candidate)
}

func (s *LayoutService) Reposition(planID, tableID, x, y int) (*domain.TablePlacement, error) {
	plan, placement, err := s.loadPlacement(planID, tableID)
	if err != nil {
		return nil, err
	}

	candidate := placementRect(*placement)
	candidate.X = x
	candidate.Y = y

	return s.commitPosition(plan, placement, candidate)
}

func (s *LayoutService) Resize(planID, tableID, width, height int) (*domain.TablePlacement, error) {
	if width <= 0 || height <= 0 {
		return nil, &domain.ValidationError{Msg: "width and height must be positive"}
	}

	plan, placement, err := s.loadPlacement(planID, tableID)
	if err != nil {
		return nil, err
	}

	candidate := placementRect(*placement)
	candidate.Width = width
	candidate.Height = height

	if violations := ValidatePlacement(plan, candidate, tableID); len(violations) > 0 {
		return nil, &domain.PositionError{Violations: violations}
	}
	if err := s.plans.UpdatePlacementSize(plan.ID, tableID, width, height); err != nil {
		return nil, fmt.Errorf("failed to resize table %d: %w", tableID, err)
	}
	placement.Width = width
	placement.Height = height
	return placement, nil
}

// RemoveTable removes the placement unconditionally. Whether an active order
// still references the table is the orchestrating collaborator's concern.
func (s *LayoutService) RemoveTable(planID, tableID int) error {
	if err := s.plans.DeletePlacement(planID, tableID); err != nil {
		return fmt.Errorf("failed to remove table %d from plan %d: %w", tableID, planID, err)
	}
	return nil
}

// ResizeFloorPlan re-validates every active placement against the new bounds
// and rejects the resize if any table would end up out of bounds or inside
// the edge margin. Nothing is committed on failure.
func (s *LayoutService) ResizeFloorPlan(planID, width, height int) (*domain.FloorPlan, error) {
	if width <= 0 || height <= 0 {
		return nil, &domain.ValidationError{Msg: "floor plan width and height must be positive"}
	}

	plan, err := s.plans.GetFloorPlan(planID)
	if err != nil {
		return nil, fmt.Errorf("failed to load floor plan %d: %w", planID, err)
	}

	var violations []string
	for _, placement := range plan.Placements {
		if !placement.IsActive {
			continue
		}
		rect := placementRect(placement)
		if !geometry.InBounds(rect, width, height) {
			violations = append(violations, fmt.Sprintf("table:%d:%s", placement.TableID, domain.ViolationOutOfBounds))
		} else if !geometry.InInsetBounds(rect, width, height, MarginDistance) {
			violations = append(violations, fmt.Sprintf("table:%d:%s", placement.TableID, domain.ViolationTooCloseToEdge))
		}
	}
	if len(violations) > 0 {
		return nil, &domain.PositionError{Violations: violations}
	}

	if err := s.plans.UpdateFloorPlanSize(planID, width, height); err != nil {
		return nil, fmt.Errorf("failed to resize floor plan %d: %w", planID, err)
	}
	plan.Width = width
	plan.Height = height
	return plan, nil
}

func (s *LayoutService) loadPlacement(planID, tableID int) (*domain.FloorPlan, *domain.TablePlacement, error) {
	plan, err := s.plans.GetFloorPlan(planID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load floor plan %d: %w", planID, err)
	}
	for i := range plan.Placements {
		if plan.Placements[i].TableID == tableID && plan.Placements[i].IsActive {
			return plan, &plan.Placements[i], nil
		}
	}
	return nil, nil, &domain.ValidationError{Msg: fmt.Sprintf("table %d has no placement on plan %d", tableID, planID)}
}

func (s *LayoutService) commitPosition(plan *domain.FloorPlan, placement *domain.TablePlacement, candidate geometry.Rect) (*domain.TablePlacement, error) {
	if violations := ValidatePlacement(plan, candidate, placement.TableID); len(violations) > 0 {
		return nil, &domain.PositionError{Violations: violations}
	}
	if err := s.plans.UpdatePlacementPosition(plan.ID, placement.TableID, candidate.X, candidate.Y); err != nil {
		return nil, fmt.Errorf("failed to move table %d: %w", placement.TableID, err)
	}
	placement.X = candidate.X
	placement.Y = candidate.Y
	return placement, nil
}

var _ LayoutServiceInterface = (*LayoutService)(nil)
