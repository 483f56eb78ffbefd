package mongo

import (
	"strings"
	"time"

	"github.com/op/go-logging"
	"github.com/tryanzu/orders/core/store"
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

var log = logging.MustGetLogger("mongo")

// Service is the mongodb backed store. Every operation runs on its own copy
// of the root session.
type Service struct {
	Session *mgo.Session
	Name    string
}

// Index is a unique natural key of a collection.
type Index struct {
	Collection string
	Key        []string
}

func Dial(uri, name string) (*Service, error) {
	session, err := mgo.DialWithTimeout(uri, 10*time.Second)
	if err != nil {
		return nil, err
	}
	session.SetMode(mgo.Monotonic, true)
	return &Service{Session: session, Name: name}, nil
}

func (s *Service) Close() {
	s.Session.Close()
}

func (s *Service) with(collection string, fn func(*mgo.Collection) error) error {
	session := s.Session.Copy()
	defer session.Close()
	return fn(session.DB(s.Name).C(collection))
}

// EnsureIndexes creates the unique natural key indexes upserts rely on.
func (s *Service) EnsureIndexes(list ...Index) error {
	for _, index := range list {
		err := s.with(index.Collection, func(c *mgo.Collection) error {
			return c.EnsureIndex(mgo.Index{
				Key:        index.Key,
				Unique:     true,
				Background: true,
			})
		})
		if err != nil {
			log.Errorf("index failed	collection=%s key=%v err=%v", index.Collection, index.Key, err)
			return err
		}
		log.Debugf("index ensured	collection=%s key=%v", index.Collection, index.Key)
	}
	return nil
}

func (s *Service) FindOne(collection string, key store.Predicate, result interface{}) error {
	return s.with(collection, func(c *mgo.Collection) error {
		err := c.Find(key.M()).One(result)
		if err == mgo.ErrNotFound {
			return store.ErrNotFound
		}
		return err
	})
}

func (s *Service) Upsert(collection string, key store.Predicate, doc interface{}, result interface{}) error {
	change, err := upsertChange(doc)
	if err != nil {
		return err
	}
	if result == nil {
		result = &bson.M{}
	}
	return s.with(collection, func(c *mgo.Collection) error {
		_, err := c.Find(key.M()).Apply(change, result)

		// Two concurrent upserts of a new key both try to insert, the unique
		// index rejects the loser which then matches the winner's document.
		if mgo.IsDup(err) {
			log.Warningf("upsert raced	collection=%s key=%v", collection, key.M())
			_, err = c.Find(key.M()).Apply(change, result)
		}
		return err
	})
}

func (s *Service) Find(collection string, p store.Predicate, page, perPage int, result interface{}) (meta store.Page, err error) {
	err = s.with(collection, func(c *mgo.Collection) error {
		query := c.Find(p.M())
		total, err := query.Count()
		if err != nil {
			return err
		}
		meta = store.NewPage(total, page, perPage)
		return query.Sort("_id").Skip(meta.Skip()).Limit(perPage).All(result)
	})
	return
}

func (s *Service) AggregateSum(collection string, p store.Predicate, field string) (total float64, err error) {
	err = s.with(collection, func(c *mgo.Collection) error {
		var sum struct {
			Total float64 `bson:"total"`
		}
		err := c.Pipe(sumPipeline(p, field)).One(&sum)
		if err == mgo.ErrNotFound {
			return nil
		}
		total = sum.Total
		return err
	})
	return
}

func (s *Service) Duplicates(collection string, keys ...string) (list []store.Duplicate, err error) {
	list = []store.Duplicate{}
	err = s.with(collection, func(c *mgo.Collection) error {
		iter := c.Pipe(duplicatesPipeline(keys...)).Iter()

		var group struct {
			Key   bson.M          `bson:"_id"`
			IDs   []bson.ObjectId `bson:"ids"`
			Count int             `bson:"count"`
		}
		for iter.Next(&group) {
			duplicate := store.Duplicate{Key: map[string]interface{}{}, Count: group.Count}
			for _, k := range keys {
				duplicate.Key[k] = group.Key[groupField(k)]
			}
			for _, id := range group.IDs {
				duplicate.IDs = append(duplicate.IDs, id.Hex())
			}
			list = append(list, duplicate)
		}
		return iter.Close()
	})
	return
}

func upsertChange(doc interface{}) (mgo.Change, error) {
	data, err := bson.Marshal(doc)
	if err != nil {
		return mgo.Change{}, err
	}
	set := bson.M{}
	if err := bson.Unmarshal(data, &set); err != nil {
		return mgo.Change{}, err
	}
	delete(set, "_id")

	return mgo.Change{
		Update: bson.M{
			"$set":         set,
			"$setOnInsert": bson.M{"_id": bson.NewObjectId()},
		},
		Upsert:    true,
		ReturnNew: true,
	}, nil
}

func sumPipeline(p store.Predicate, field string) []bson.M {
	return []bson.M{
		{"$match": p.M()},
		{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": bson.M{"$toDouble": "$" + field}},
		}},
	}
}

func duplicatesPipeline(keys ...string) []bson.M {
	id := bson.M{}
	for _, k := range keys {
		id[groupField(k)] = "$" + k
	}
	return []bson.M{
		{"$group": bson.M{
			"_id":   id,
			"ids":   bson.M{"$push": "$_id"},
			"count": bson.M{"$sum": 1},
		}},
		{"$match": bson.M{"count": bson.M{"$gt": 1}}},
		{"$sort": bson.M{"count": -1}},
	}
}

// group keys cannot hold dots.
func groupField(key string) string {
	return strings.Replace(key, ".", "_", -1)
}
