// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package journal - persistent record of reviewed transactions
package journal

import (
	"encoding/binary"
	"encoding/json"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/hivesigner/digest"
	"github.com/bitmark-inc/hivesigner/fault"
)

// key prefixes
const (
	recordPrefix = 'R' // R ‖ digest → json entry
	timePrefix   = 'T' // T ‖ big endian unix nanoseconds ‖ digest → nil
)

// Entry - outcome of one review
type Entry struct {
	Digest     digest.Digest `json:"digest"`
	Network    string        `json:"network"`
	Operations []string      `json:"operations"`
	Accepted   bool          `json:"accepted"`
	Reason     string        `json:"reason,omitempty"`
	Timestamp  time.Time     `json:"timestamp"`
}

// Journal - handle on the journal database
type Journal struct {
	sync.Mutex
	log *logger.L
	db  *leveldb.DB
}

// Open - open or create a journal database
func Open(directory string, readOnly bool) (*Journal, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(directory, opt)
	if nil != err {
		return nil, err
	}

	j := &Journal{
		log: logger.New("journal"),
		db:  db,
	}
	j.log.Infof("opened: %s  read only: %t", directory, readOnly)
	return j, nil
}

// Close - flush and close the database
func (j *Journal) Close() error {
	j.Lock()
	defer j.Unlock()

	if nil == j.db {
		return fault.ErrNotInitialised
	}
	err := j.db.Close()
	j.db = nil
	j.log.Info("closed")
	j.log.Flush()
	return err
}

// Record - store an entry, replacing any earlier review of the same digest
func (j *Journal) Record(entry Entry) error {
	j.Lock()
	defer j.Unlock()

	if nil == j.db {
		return fault.ErrNotInitialised
	}

	data, err := json.Marshal(entry)
	if nil != err {
		return err
	}

	batch := new(leveldb.Batch)

	// drop the time index of a previous review
	old, err := j.db.Get(recordKey(entry.Digest), nil)
	if nil == err {
		var previous Entry
		if nil == json.Unmarshal(old, &previous) {
			batch.Delete(timeKey(previous.Timestamp, previous.Digest))
		}
	} else if leveldb.ErrNotFound != err {
		return err
	}

	batch.Put(recordKey(entry.Digest), data)
	batch.Put(timeKey(entry.Timestamp, entry.Digest), []byte{})

	err = j.db.Write(batch, nil)
	if nil != err {
		j.log.Errorf("record: %s  error: %s", entry.Digest, err)
		return err
	}
	j.log.Debugf("record: %s  accepted: %t", entry.Digest, entry.Accepted)
	return nil
}

// Get - fetch the entry for a transaction digest
func (j *Journal) Get(d digest.Digest) (Entry, error) {
	j.Lock()
	defer j.Unlock()

	if nil == j.db {
		return Entry{}, fault.ErrNotInitialised
	}
	return j.get(d)
}

func (j *Journal) get(d digest.Digest) (Entry, error) {
	data, err := j.db.Get(recordKey(d), nil)
	if leveldb.ErrNotFound == err {
		return Entry{}, fault.ErrNotFoundJournalEntry
	}
	if nil != err {
		return Entry{}, err
	}

	var entry Entry
	err = json.Unmarshal(data, &entry)
	return entry, err
}

// List - most recent entries first, limit <= 0 means all
func (j *Journal) List(limit int) ([]Entry, error) {
	j.Lock()
	defer j.Unlock()

	if nil == j.db {
		return nil, fault.ErrNotInitialised
	}

	iter := j.db.NewIterator(ldb_util.BytesPrefix([]byte{timePrefix}), nil)
	defer iter.Release()

	entries := make([]Entry, 0, 16)
	for ok := iter.Last(); ok; ok = iter.Prev() {
		if limit > 0 && len(entries) >= limit {
			break
		}
		key := iter.Key()
		var d digest.Digest
		err := digest.FromBytes(&d, key[9:])
		if nil != err {
			return nil, err
		}
		entry, err := j.get(d)
		if nil != err {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, iter.Error()
}

func recordKey(d digest.Digest) []byte {
	return append([]byte{recordPrefix}, d[:]...)
}

func timeKey(timestamp time.Time, d digest.Digest) []byte {
	key := make([]byte, 9, 9+digest.Length)
	key[0] = timePrefix
	binary.BigEndian.PutUint64(key[1:], uint64(timestamp.UnixNano()))
	return append(key, d[:]...)
}
