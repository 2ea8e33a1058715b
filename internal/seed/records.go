package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"pasithulir/internal/store"
	"pasithulir/internal/utils"
	"pasithulir/pkg/types"

	"github.com/jackc/pgx/v5/pgxpool"
)

var fakeDonors = []string{
	"Saravana Bhavan", "Grand Wedding Hall", "Hotel Annapoorna",
	"Sweet Corner", "Community Kitchen", "Murugan Idli Shop",
}

var fakeFoodTypes = []string{
	"cooked-meals", "rice", "vegetables", "fruits", "snacks", "sweets", "mixed",
}

var fakeOrganizations = []string{
	"Hope Shelter", "Sunrise Orphanage", "Elder Care Trust",
	"St. Mary's School", "Velachery Community Group",
}

var fakeOrganizationTypes = []string{
	"orphanage", "shelter", "ngo", "elderly-care", "school",
}

type weightedLifecycle struct {
	Approved bool
	Finished bool
	Weight   int
}

var weightedRequestLifecycles = []weightedLifecycle{
	{Approved: false, Finished: false, Weight: 40},
	{Approved: true, Finished: false, Weight: 35},
	{Approved: true, Finished: true, Weight: 15},
	{Approved: false, Finished: true, Weight: 10},
}

var weightedUrgencies = []struct {
	Urgency string
	Weight  int
}{
	{Urgency: types.UrgencyHigh, Weight: 30},
	{Urgency: types.UrgencyMedium, Weight: 45},
	{Urgency: types.UrgencyLow, Weight: 25},
}

// SeedFakeRecords inserts demo donations and requests spread across the
// lifecycle buckets so the admin dashboard has something to triage.
func SeedFakeRecords(
	ctx context.Context,
	pool *pgxpool.Pool,
	donationRepo *store.DonationRepository,
	requestRepo *store.RequestRepository,
	count int,
	reset bool,
) error {
	if count <= 0 {
		fmt.Println("Skipping fake records seed because count <= 0")
		return nil
	}

	if reset {
		result, err := pool.Exec(ctx, `DELETE FROM pasithulir.donations WHERE description LIKE '[seed] %'`)
		if err != nil {
			return fmt.Errorf("failed to reset seeded fake donations: %w", err)
		}
		fmt.Printf("Reset seeded fake donations: %d deleted\n", result.RowsAffected())

		result, err = pool.Exec(ctx, `DELETE FROM pasithulir.requests WHERE description LIKE '[seed] %'`)
		if err != nil {
			return fmt.Errorf("failed to reset seeded fake requests: %w", err)
		}
		fmt.Printf("Reset seeded fake requests: %d deleted\n", result.RowsAffected())
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 0; i < count; i++ {
		donation := &types.Donation{
			DonorName:        fakeDonors[rng.Intn(len(fakeDonors))],
			OrganizationType: "restaurant",
			ContactNumber:    fmt.Sprintf("+91 98765 %05d", rng.Intn(100000)),
			Email:            utils.StringPtr(fmt.Sprintf("donor%d@example.org", i)),
			Address:          "12 Main Street, Chennai",
			FoodType:         fakeFoodTypes[rng.Intn(len(fakeFoodTypes))],
			Quantity:         fmt.Sprintf("%d people", 10+rng.Intn(190)),
			ExpiryTime:       time.Now().Add(time.Duration(1+rng.Intn(12)) * time.Hour),
			Description:      utils.StringPtr("[seed] Surplus food ready for pickup."),
			Finished:         rng.Intn(3) == 0,
		}
		if err := donationRepo.CreateDonation(ctx, donation); err != nil {
			return fmt.Errorf("failed to seed fake donation: %w", err)
		}

		lifecycle := pickRequestLifecycle(rng)
		request := &types.Request{
			OrganizationName: fakeOrganizations[rng.Intn(len(fakeOrganizations))],
			OrganizationType: fakeOrganizationTypes[rng.Intn(len(fakeOrganizationTypes))],
			ContactPerson:    "Coordinator",
			ContactNumber:    fmt.Sprintf("+91 90000 %05d", rng.Intn(100000)),
			Address:          "45 Beach Road, Chennai",
			PeopleCount:      10 + rng.Intn(190),
			UrgencyLevel:     pickUrgency(rng),
			PreferredTime:    "morning",
			Description:      utils.StringPtr("[seed] Regular meal support requested."),
			Finished:         lifecycle.Finished,
		}
		if lifecycle.Approved {
			request.Status = utils.StringPtr(types.RequestStatusApproved)
		}
		if err := requestRepo.CreateRequest(ctx, request); err != nil {
			return fmt.Errorf("failed to seed fake request: %w", err)
		}
	}

	fmt.Printf("Seeded %d fake donations and %d fake requests\n", count, count)

	return nil
}

func pickRequestLifecycle(rng *rand.Rand) weightedLifecycle {
	total := 0
	for _, entry := range weightedRequestLifecycles {
		total += entry.Weight
	}

	roll := rng.Intn(total)
	for _, entry := range weightedRequestLifecycles {
		if roll < entry.Weight {
			return entry
		}
		roll -= entry.Weight
	}

	return weightedRequestLifecycles[0]
}

func pickUrgency(rng *rand.Rand) string {
	total := 0
	for _, entry := range weightedUrgencies {
		total += entry.Weight
	}

	roll := rng.Intn(total)
	for _, entry := range weightedUrgencies {
		if roll < entry.Weight {
			return entry.Urgency
		}
		roll -= entry.Weight
	}

	return weightedUrgencies[0].Urgency
}
