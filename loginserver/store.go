package loginserver

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/bluele/gcache"
)

// Store keeps the scaffold of each login flow so a re-rendered page shows
// the same ticket and execution key.
type Store struct {
	backend gcache.Cache
	file    string
}

func NewStore(file string, size int, duration time.Duration) (*Store, error) {
	backend := gcache.New(size).LRU().Expiration(duration).Build()

	// TODO: flushed scaffolds do not keep their expiration date
	if file != "" {
		if _, err := os.Stat(file); err == nil {
			reader, err := os.Open(file)
			if err != nil {
				return nil, err
			}
			defer reader.Close()

			scanner := bufio.NewScanner(reader)
			for scanner.Scan() {
				sc := Scaffold{}
				if err := json.Unmarshal(scanner.Bytes(), &sc); err != nil {
					return nil, err
				}
				backend.Set(sc.FlowID, &sc)
			}

			if err := scanner.Err(); err != nil {
				return nil, err
			}
		}
	}

	return &Store{
		backend: backend,
		file:    file,
	}, nil
}

func (s *Store) Get(flowID string) (*Scaffold, error) {
	val, err := s.backend.Get(flowID)
	if errors.Is(err, gcache.KeyNotFoundError) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return val.(*Scaffold), nil
}

func (s *Store) Set(sc *Scaffold) error {
	return s.backend.Set(sc.FlowID, sc)
}

func (s *Store) Remove(flowID string) bool {
	return s.backend.Remove(flowID)
}

func (s *Store) Len() int {
	return s.backend.Len(true)
}

func (s *Store) Purge() {
	s.backend.Purge()
}

func (s *Store) FlushToFile() error {
	if s.file == "" {
		return nil
	}
	writer, err := os.Create(s.file)
	if err != nil {
		return err
	}
	defer writer.Close()
	bwriter := bufio.NewWriter(writer)
	defer bwriter.Flush()
	for _, v := range s.backend.GetALL(true) {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		data = append(data, '\n')
		if _, err := bwriter.Write(data); err != nil {
			return err
		}
	}
	return nil
}
