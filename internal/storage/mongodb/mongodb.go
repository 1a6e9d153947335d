package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"authsvc/internal/domain/models"
	"authsvc/internal/storage"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type Storage struct {
	client   *mongo.Client
	accounts *mongo.Collection
	sessions *mongo.Collection
	counters *mongo.Collection
}

type accountDoc struct {
	ID           int64     `bson:"_id"`
	PublicID     string    `bson:"public_id"`
	Identifier   string    `bson:"identifier"`
	Partition    string    `bson:"partition"`
	Role         string    `bson:"role"`
	Name         string    `bson:"name"`
	Surname      string    `bson:"surname"`
	PassHash     []byte    `bson:"pass_hash"`
	SecretCode   string    `bson:"secret_code,omitempty"`
	SecretActive bool      `bson:"secret_active"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

type sessionDoc struct {
	ID          int64     `bson:"_id"`
	Owner       string    `bson:"owner"`
	TokenHash   string    `bson:"token_hash"`
	Fingerprint string    `bson:"fingerprint"`
	UserAgent   string    `bson:"user_agent"`
	ExpiresAt   time.Time `bson:"expires_at"`
	CreatedAt   time.Time `bson:"created_at"`
}

type counterDoc struct {
	ID    string `bson:"_id"`
	Value int64  `bson:"value"`
}

// New connects to MongoDB and makes sure the unique indexes exist.
func New(ctx context.Context, uri, database string) (*Storage, error) {
	const op = "storage.mongodb.New"

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("%s: connect: %w", op, err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%s: ping: %w", op, err)
	}

	db := client.Database(database)
	s := &Storage{
		client:   client,
		accounts: db.Collection("accounts"),
		sessions: db.Collection("refresh_sessions"),
		counters: db.Collection("counters"),
	}

	if err := s.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%s: indexes: %w", op, err)
	}

	return s, nil
}

// EnsureIndexes creates the indexes the store relies on for uniqueness.
// It is idempotent.
func (s *Storage) EnsureIndexes(ctx context.Context) error {
	indexes := []struct {
		coll  *mongo.Collection
		name  string
		model mongo.IndexModel
	}{
		{s.accounts, "accounts.public_id", mongo.IndexModel{
			Keys:    bson.D{{Key: "public_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{s.accounts, "accounts.identifier_partition", mongo.IndexModel{
			Keys:    bson.D{{Key: "identifier", Value: 1}, {Key: "partition", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{s.accounts, "accounts.role_partition", mongo.IndexModel{
			Keys: bson.D{{Key: "role", Value: 1}, {Key: "partition", Value: 1}},
		}},
		{s.sessions, "refresh_sessions.token_hash", mongo.IndexModel{
			Keys:    bson.D{{Key: "token_hash", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{s.sessions, "refresh_sessions.owner_fingerprint", mongo.IndexModel{
			Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "fingerprint", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
	}

	for _, idx := range indexes {
		if _, err := idx.coll.Indexes().CreateOne(ctx, idx.model); err != nil {
			return fmt.Errorf("%s index: %w", idx.name, err)
		}
	}

	return nil
}

// Close disconnects from MongoDB.
func (s *Storage) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.client.Disconnect(ctx)
}

// nextID atomically increments and returns the next ID for a given collection.
func (s *Storage) nextID(ctx context.Context, collectionName string) (int64, error) {
	filter := bson.D{{Key: "_id", Value: collectionName}}
	update := bson.D{{Key: "$inc", Value: bson.D{{Key: "value", Value: int64(1)}}}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var counter counterDoc
	err := s.counters.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Value, nil
}

func (s *Storage) SaveAccount(ctx context.Context, acc models.Account) (int64, error) {
	const op = "storage.mongodb.SaveAccount"

	if len(acc.PassHash) == 0 {
		return 0, fmt.Errorf("%s: empty credential hash", op)
	}
	acc.Secret, acc.SecretActive = "", false

	id, err := s.insertAccount(ctx, acc)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

func (s *Storage) SaveInvitation(ctx context.Context, acc models.Account) (int64, error) {
	const op = "storage.mongodb.SaveInvitation"

	if acc.Secret == "" {
		return 0, fmt.Errorf("%s: empty secret", op)
	}
	acc.PassHash, acc.SecretActive = nil, true

	id, err := s.insertAccount(ctx, acc)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

func (s *Storage) insertAccount(ctx context.Context, acc models.Account) (int64, error) {
	id, err := s.nextID(ctx, "accounts")
	if err != nil {
		return 0, fmt.Errorf("nextID: %w", err)
	}

	doc := accountDoc{
		ID:           id,
		PublicID:     acc.PublicID,
		Identifier:   acc.Identifier,
		Partition:    acc.Partition,
		Role:         acc.Role,
		Name:         acc.Profile.Name,
		Surname:      acc.Profile.Surname,
		PassHash:     acc.PassHash,
		SecretCode:   acc.Secret,
		SecretActive: acc.SecretActive,
		CreatedAt:    acc.CreatedAt,
		UpdatedAt:    acc.UpdatedAt,
	}

	if _, err := s.accounts.InsertOne(ctx, doc); err != nil {
		if isDuplicateKeyError(err) {
			return 0, storage.ErrAccountExists
		}
		return 0, err
	}

	return id, nil
}

func (s *Storage) AccountByPublicID(ctx context.Context, publicID string) (models.Account, error) {
	const op = "storage.mongodb.AccountByPublicID"

	acc, err := s.findAccount(ctx, bson.D{{Key: "public_id", Value: publicID}})
	if err != nil {
		return models.Account{}, fmt.Errorf("%s: %w", op, err)
	}
	return acc, nil
}

func (s *Storage) AccountByIdentifier(ctx context.Context, identifier, partition string) (models.Account, error) {
	const op = "storage.mongodb.AccountByIdentifier"

	acc, err := s.findAccount(ctx, bson.D{
		{Key: "identifier", Value: identifier},
		{Key: "partition", Value: partition},
	})
	if err != nil {
		return models.Account{}, fmt.Errorf("%s: %w", op, err)
	}
	return acc, nil
}

func (s *Storage) findAccount(ctx context.Context, filter bson.D) (models.Account, error) {
	var doc accountDoc
	err := s.accounts.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Account{}, storage.ErrAccountNotFound
		}
		return models.Account{}, err
	}

	return models.Account{
		ID:           doc.ID,
		PublicID:     doc.PublicID,
		Identifier:   doc.Identifier,
		Partition:    doc.Partition,
		Role:         doc.Role,
		Profile:      models.Profile{Name: doc.Name, Surname: doc.Surname},
		PassHash:     doc.PassHash,
		Secret:       doc.SecretCode,
		SecretActive: doc.SecretActive,
		CreatedAt:    doc.CreatedAt.UTC(),
		UpdatedAt:    doc.UpdatedAt.UTC(),
	}, nil
}

func (s *Storage) AccountsByRole(ctx context.Context, role, partition, filter string) ([]string, error) {
	const op = "storage.mongodb.AccountsByRole"

	query := bson.D{
		{Key: "role", Value: role},
		{Key: "partition", Value: partition},
	}
	if filter != "" {
		pattern := bson.Regex{Pattern: regexp.QuoteMeta(filter), Options: "i"}
		query = append(query, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "identifier", Value: pattern}},
			bson.D{{Key: "name", Value: pattern}},
			bson.D{{Key: "surname", Value: pattern}},
		}})
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetProjection(bson.D{{Key: "public_id", Value: 1}})

	cur, err := s.accounts.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var docs []accountDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.PublicID)
	}

	return ids, nil
}

// ActivateInvitation matches only a pending invitation, so of two racing
// activations exactly one modifies the document.
func (s *Storage) ActivateInvitation(ctx context.Context, accountID int64, passHash []byte, now time.Time) error {
	const op = "storage.mongodb.ActivateInvitation"

	res, err := s.accounts.UpdateOne(ctx,
		bson.D{
			{Key: "_id", Value: accountID},
			{Key: "pass_hash", Value: nil},
			{Key: "secret_active", Value: true},
		},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "pass_hash", Value: passHash},
			{Key: "secret_active", Value: false},
			{Key: "updated_at", Value: now},
		}}},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrStateConflict)
	}

	return nil
}

func (s *Storage) SetSecret(ctx context.Context, publicID, secret string, now time.Time) error {
	const op = "storage.mongodb.SetSecret"

	return s.updateByPublicID(ctx, op, publicID, bson.D{
		{Key: "secret_code", Value: secret},
		{Key: "secret_active", Value: true},
		{Key: "updated_at", Value: now},
	})
}

func (s *Storage) UpdatePassword(ctx context.Context, publicID string, passHash []byte, now time.Time) error {
	const op = "storage.mongodb.UpdatePassword"

	return s.updateByPublicID(ctx, op, publicID, bson.D{
		{Key: "pass_hash", Value: passHash},
		{Key: "secret_active", Value: false},
		{Key: "updated_at", Value: now},
	})
}

func (s *Storage) updateByPublicID(ctx context.Context, op, publicID string, set bson.D) error {
	res, err := s.accounts.UpdateOne(ctx,
		bson.D{{Key: "public_id", Value: publicID}},
		bson.D{{Key: "$set", Value: set}},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrAccountNotFound)
	}
	return nil
}

func (s *Storage) SessionsByOwner(ctx context.Context, owner string) ([]models.RefreshSession, error) {
	const op = "storage.mongodb.SessionsByOwner"

	cur, err := s.sessions.Find(ctx,
		bson.D{{Key: "owner", Value: owner}},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var docs []sessionDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sessions := make([]models.RefreshSession, 0, len(docs))
	for _, d := range docs {
		sessions = append(sessions, d.model())
	}

	return sessions, nil
}

func (s *Storage) SessionByToken(ctx context.Context, tokenHash, fingerprint string) (models.RefreshSession, error) {
	const op = "storage.mongodb.SessionByToken"

	var doc sessionDoc
	err := s.sessions.FindOne(ctx, bson.D{
		{Key: "token_hash", Value: tokenHash},
		{Key: "fingerprint", Value: fingerprint},
	}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.RefreshSession{}, fmt.Errorf("%s: %w", op, storage.ErrSessionNotFound)
		}
		return models.RefreshSession{}, fmt.Errorf("%s: %w", op, err)
	}

	return doc.model(), nil
}

func (s *Storage) SaveSession(ctx context.Context, sess models.RefreshSession) (int64, error) {
	const op = "storage.mongodb.SaveSession"

	id, err := s.insertSession(ctx, sess)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

func (s *Storage) insertSession(ctx context.Context, sess models.RefreshSession) (int64, error) {
	id, err := s.nextID(ctx, "refresh_sessions")
	if err != nil {
		return 0, fmt.Errorf("nextID: %w", err)
	}

	doc := sessionDoc{
		ID:          id,
		Owner:       sess.Owner,
		TokenHash:   sess.TokenHash,
		Fingerprint: sess.Fingerprint,
		UserAgent:   sess.UserAgent,
		ExpiresAt:   sess.ExpiresAt,
		CreatedAt:   sess.CreatedAt,
	}

	if _, err := s.sessions.InsertOne(ctx, doc); err != nil {
		if isDuplicateKeyError(err) {
			return 0, storage.ErrSessionExists
		}
		return 0, err
	}

	return id, nil
}

func (s *Storage) DeleteSession(ctx context.Context, owner, fingerprint string) error {
	const op = "storage.mongodb.DeleteSession"

	_, err := s.sessions.DeleteOne(ctx, bson.D{
		{Key: "owner", Value: owner},
		{Key: "fingerprint", Value: fingerprint},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// RotateSession deletes oldID and inserts next. The delete is the
// linearization point: only the caller that removed the document goes on to
// insert, so a refresh token is never redeemed twice.
func (s *Storage) RotateSession(ctx context.Context, oldID int64, next models.RefreshSession) (int64, error) {
	const op = "storage.mongodb.RotateSession"

	res, err := s.sessions.DeleteOne(ctx, bson.D{{Key: "_id", Value: oldID}})
	if err != nil {
		return 0, fmt.Errorf("%s: delete: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return 0, fmt.Errorf("%s: %w", op, storage.ErrSessionNotFound)
	}

	id, err := s.insertSession(ctx, next)
	if err != nil {
		return 0, fmt.Errorf("%s: insert: %w", op, err)
	}

	return id, nil
}

func (d sessionDoc) model() models.RefreshSession {
	return models.RefreshSession{
		ID:          d.ID,
		Owner:       d.Owner,
		TokenHash:   d.TokenHash,
		Fingerprint: d.Fingerprint,
		UserAgent:   d.UserAgent,
		ExpiresAt:   d.ExpiresAt.UTC(),
		CreatedAt:   d.CreatedAt.UTC(),
	}
}

// isDuplicateKeyError checks if the error is a MongoDB duplicate key error (code 11000).
func isDuplicateKeyError(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	return false
}
