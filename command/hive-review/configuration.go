// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hivesigner/chain"
	"github.com/bitmark-inc/hivesigner/configuration"
	"github.com/bitmark-inc/hivesigner/stream"
)

// basic defaults (directories are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultChunkSize = 64

	defaultJournalDirectory = "journal"

	defaultLogDirectory = "log"
	defaultLogFile      = "hive-review.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		logger.DefaultTag: "critical",
	}
)

// JournalType - where reviews are recorded
type JournalType struct {
	Enabled   bool   `gluamapper:"enabled" json:"enabled"`
	Directory string `gluamapper:"directory" json:"directory"`
}

// Configuration - settings for hive-review
type Configuration struct {
	DataDirectory   string               `gluamapper:"data_directory" json:"data_directory"`
	Network         string               `gluamapper:"network" json:"network"`
	ChunkSize       int                  `gluamapper:"chunk_size" json:"chunk_size"`
	LengthEncoding  string               `gluamapper:"length_encoding" json:"length_encoding"`
	ConfirmMultiple bool                 `gluamapper:"confirm_multiple" json:"confirm_multiple"`
	Journal         JournalType          `gluamapper:"journal" json:"journal"`
	Logging         logger.Configuration `gluamapper:"logging" json:"logging"`
}

func defaultConfiguration() *Configuration {
	return &Configuration{
		DataDirectory:  defaultDataDirectory,
		Network:        chain.Hive,
		ChunkSize:      defaultChunkSize,
		LengthEncoding: stream.LengthVarint.String(),

		Journal: JournalType{
			Enabled:   true,
			Directory: defaultJournalDirectory,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration()

	variables := map[string]string{
		"config_directory": dataDirectory,
	}
	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	options.Network = strings.ToLower(options.Network)
	if !chain.Valid(options.Network) {
		return nil, fmt.Errorf("network: %q is not supported", options.Network)
	}

	if _, err := stream.LengthEncodingFromString(options.LengthEncoding); nil != err {
		return nil, fmt.Errorf("length encoding: %q is not supported", options.LengthEncoding)
	}

	if options.ChunkSize <= 0 {
		options.ChunkSize = defaultChunkSize
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Journal.Directory,
		&options.Logging.Directory,
	} {
		if !filepath.IsAbs(*d) {
			*d = filepath.Join(options.DataDirectory, *d)
		}
		*d = filepath.Clean(*d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("files: %q is not plain name", options.Logging.File)
	}

	return options, nil
}
