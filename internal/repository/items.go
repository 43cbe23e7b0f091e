package repository

import (
	"context"
	"fmt"

	"github.com/raohamdcreator-bit/verity/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

const itemsCollection = "prompt_items"

// ItemsRepository reads a team's prompt library. The similarity engine never
// writes items; this repository is the read-only boundary to the document
// store that owns them.
type ItemsRepository struct {
	mongoRepo *MongoRepository
}

func NewItemsRepository(mongoRepo *MongoRepository) *ItemsRepository {
	return &ItemsRepository{
		mongoRepo: mongoRepo,
	}
}

func (r *ItemsRepository) GetItemsByTeamID(ctx context.Context, teamID string) ([]models.PromptItem, error) {
	filter := bson.M{"teamId": teamID}

	cursor, err := r.mongoRepo.FindMany(ctx, itemsCollection, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.PromptItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}

	return items, nil
}

func (r *ItemsRepository) GetItemByID(ctx context.Context, itemID string) (*models.PromptItem, error) {
	filter := bson.M{"_id": itemID}

	var item models.PromptItem
	if err := r.mongoRepo.FindOne(ctx, itemsCollection, filter).Decode(&item); err != nil {
		return nil, fmt.Errorf("failed to find item: %w", err)
	}

	return &item, nil
}

func (r *ItemsRepository) CountItemsByTeamID(ctx context.Context, teamID string) (int64, error) {
	filter := bson.M{"teamId": teamID}

	count, err := r.mongoRepo.CountDocuments(ctx, itemsCollection, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}

	return count, nil
}
