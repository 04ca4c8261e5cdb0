package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	sizesBucket   = []byte("sizes")
	resizesBucket = []byte("resizes")
)

var lastSizeKey = []byte("last")

// maxResizeEvents caps the resize log; older entries are pruned on append.
const maxResizeEvents = 500

type Store struct {
	db *bolt.DB
}

func NewStore(dbPath string) (*Store, error) {
	db, err := bolt.Open(dbPath, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{sizesBucket, resizesBucket} {
			if _, createErr := tx.CreateBucketIfNotExists(bucket); createErr != nil {
				return createErr
			}
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("creating buckets: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveLastSize records the most recently observed viewport size.
func (s *Store) SaveLastSize(size ViewportSize) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(sizesBucket)
		data, err := json.Marshal(size)
		if err != nil {
			return err
		}
		return b.Put(lastSizeKey, data)
	})
}

// LastSize returns the most recently recorded viewport size. The second
// return value is false when nothing has been recorded yet.
func (s *Store) LastSize() (ViewportSize, bool, error) {
	var size ViewportSize
	found := false
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(sizesBucket)
		data := b.Get(lastSizeKey)
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &size)
	})
	return size, found, err
}

// AppendResize adds an event to the resize log and prunes it down to
// maxResizeEvents.
func (s *Store) AppendResize(ev ResizeEvent) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(resizesBucket)

		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		data, err := json.Marshal(ev)
		if err != nil {
			return err
		}
		if err := b.Put(seqKey(seq), data); err != nil {
			return err
		}

		// Drop oldest entries beyond the cap. Keys are sequence-ordered,
		// so a forward cursor walks oldest first.
		count := 0
		if err := b.ForEach(func(_, _ []byte) error { count++; return nil }); err != nil {
			return err
		}
		c := b.Cursor()
		for k, _ := c.First(); k != nil && count > maxResizeEvents; k, _ = c.Next() {
			if err := c.Delete(); err != nil {
				return err
			}
			count--
		}
		return nil
	})
}

// RecentResizes returns up to n resize events, newest first.
func (s *Store) RecentResizes(n int) ([]ResizeEvent, error) {
	var events []ResizeEvent
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(resizesBucket)
		c := b.Cursor()
		for k, v := c.Last(); k != nil && len(events) < n; k, v = c.Prev() {
			var ev ResizeEvent
			if err := json.Unmarshal(v, &ev); err != nil {
				return err
			}
			events = append(events, ev)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading resize log: %w", err)
	}
	return events, nil
}

func seqKey(seq uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, seq)
	return k
}
