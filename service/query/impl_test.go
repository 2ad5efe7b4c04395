package query

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/x-xyz/xionmarket/base/ctx"
	"github.com/x-xyz/xionmarket/base/database/mongoclient"
	"github.com/x-xyz/xionmarket/domain"
)

var (
	mockCTX = ctx.Background()
)

const (
	mockTable = domain.TableListingRecords
	dbName    = "xionmarket_test"
)

type dummy struct {
	Dummy  string `json:"dummy" bson:"dummy"`
	Update string `json:"updatekey" bson:"updatekey"`
}

type querySuite struct {
	suite.Suite
	im       *impl
	mongoURI string
}

// TestQuerySuite runs against a live mongo given by MONGO_TEST_URI.
func TestQuerySuite(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}
	suite.Run(t, &querySuite{mongoURI: uri})
}

func (q *querySuite) SetupTest() {
	q.im = &impl{
		client: mongoclient.MustConnectMongoClient(q.mongoURI, dbName, 1),
	}
	q.Require().NoError(q.im.collection(mockTable).Drop(mockCTX))
}

func (q *querySuite) TestFindOne() {
	err := q.im.Upsert(mockCTX, mockTable, bson.M{"dummy": "a"}, bson.M{"dummy": "a", "updatekey": "b"})
	q.NoError(err)

	result := &dummy{}
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "a"}, result))
	q.Equal(dummy{"a", "b"}, *result)

	q.Equal(ErrNotFound, q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "c"}, result))
}

func (q *querySuite) TestInsertWithDuplicateKey() {
	unique := true
	_, err := q.im.collection(mockTable).Indexes().CreateOne(mockCTX, mongo.IndexModel{
		Keys:    bson.D{{Key: "dummy", Value: 1}},
		Options: &options.IndexOptions{Unique: &unique},
	})
	q.Require().NoError(err)

	q.NoError(q.im.Insert(mockCTX, mockTable, dummy{"a", "b"}))
	q.Equal(ErrDuplicateKey, q.im.Insert(mockCTX, mockTable, dummy{"a", "c"}))
	q.NoError(q.im.Insert(mockCTX, mockTable, dummy{"b", "c"}))

	n, err := q.im.Count(mockCTX, mockTable, bson.M{})
	q.NoError(err)
	q.Equal(2, n)
}

func (q *querySuite) TestUpsertReplaces() {
	q.NoError(q.im.Upsert(mockCTX, mockTable, bson.M{"dummy": "a"}, dummy{"a", "b"}))
	q.NoError(q.im.Upsert(mockCTX, mockTable, bson.M{"dummy": "a"}, dummy{"a", "c"}))

	n, err := q.im.Count(mockCTX, mockTable, bson.M{"dummy": "a"})
	q.NoError(err)
	q.Equal(1, n)

	result := &dummy{}
	q.NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "a"}, result))
	q.Equal("c", result.Update)
}

func (q *querySuite) TestSearch() {
	for _, d := range []dummy{{"a", "3"}, {"b", "1"}, {"c", "2"}} {
		q.NoError(q.im.Insert(mockCTX, mockTable, d))
	}

	results := []dummy{}
	q.NoError(q.im.Search(mockCTX, mockTable, 0, 2, "-updatekey", bson.M{}, &results))
	q.Equal([]dummy{{"a", "3"}, {"c", "2"}}, results)

	results = []dummy{}
	q.NoError(q.im.Search(mockCTX, mockTable, 2, 2, "-updatekey", bson.M{}, &results))
	q.Equal([]dummy{{"b", "1"}}, results)
}

func TestGetSortOption(t *testing.T) {
	require.Equal(t, bson.D{{Key: "createdAt", Value: -1}, {Key: "listingId", Value: 1}}, getSortOption("-createdAt", "", "listingId"))
}
