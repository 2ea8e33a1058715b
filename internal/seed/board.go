package seed

import (
	"context"
	"fmt"

	"pasithulir/internal/store"
	"pasithulir/pkg/types"
)

var boardItems = []*types.BoardItem{
	{
		DonorName:     "Saravana Bhavan",
		Location:      "T. Nagar, Chennai",
		Distance:      "2.3 km",
		FoodType:      "South Indian Meals",
		Quantity:      "50 people",
		TimeLeft:      "2 hours",
		Urgency:       "high",
		Description:   "Fresh vegetarian meals with rice, sambar, rasam, and vegetables",
		ContactNumber: "+91 98765 43210",
		Verified:      true,
	},
	{
		DonorName:     "Grand Wedding Hall",
		Location:      "Adyar, Chennai",
		Distance:      "3.1 km",
		FoodType:      "Mixed Vegetarian",
		Quantity:      "100 people",
		TimeLeft:      "4 hours",
		Urgency:       "medium",
		Description:   "Wedding leftover food - variety rice, sweets, and curries",
		ContactNumber: "+91 98765 43211",
		Verified:      true,
	},
	{
		DonorName:     "Pizza Corner",
		Location:      "Velachery, Chennai",
		Distance:      "5.2 km",
		FoodType:      "Fast Food",
		Quantity:      "25 people",
		TimeLeft:      "1 hour",
		Urgency:       "high",
		Description:   "Fresh pizzas and garlic bread",
		ContactNumber: "+91 98765 43212",
		Verified:      false,
	},
	{
		DonorName:     "Temple Kitchen",
		Location:      "Mylapore, Chennai",
		Distance:      "4.8 km",
		FoodType:      "Prasadam",
		Quantity:      "200 people",
		TimeLeft:      "6 hours",
		Urgency:       "low",
		Description:   "Temple prasadam - rice, dal, and vegetable curry",
		ContactNumber: "+91 98765 43213",
		Verified:      true,
	},
	{
		DonorName:     "Biriyani House",
		Location:      "Anna Nagar, Chennai",
		Distance:      "7.1 km",
		FoodType:      "Biriyani & Curry",
		Quantity:      "75 people",
		TimeLeft:      "3 hours",
		Urgency:       "medium",
		Description:   "Chicken and mutton biriyani with raita and curry",
		ContactNumber: "+91 98765 43214",
		Verified:      true,
	},
}

func SeedBoardItems(ctx context.Context, boardRepo *store.BoardRepository) error {
	for _, item := range boardItems {
		entry := *item
		if err := boardRepo.CreateBoardItem(ctx, &entry); err != nil {
			return fmt.Errorf("failed to seed board item %q: %w", item.DonorName, err)
		}
	}
	return nil
}
