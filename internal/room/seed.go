package room

import "context"

// SeedDefaults populates the catalog with the default rooms when it is empty.
func SeedDefaults(ctx context.Context, svc Service) error {
	existing, err := svc.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	defaults := []CreateRequest{
		{Name: "Focus Cabin", BaseHourlyRate: 500, Capacity: 2},
		{Name: "War Room", BaseHourlyRate: 900, Capacity: 8},
		{Name: "Townhall", BaseHourlyRate: 1500, Capacity: 20},
	}
	for _, req := range defaults {
		if _, err := svc.Create(ctx, req); err != nil {
			return err
		}
	}
	return nil
}
