/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package main is the entry point for starting the Moon Map server.
package main

import (
	"os"
	// Embeds the IANA zone database for the market time zone.
	_ "time/tzdata"

	"github.com/spf13/cobra"

	"github.com/moonwalkers/moonmap/internal/system/log"
)

const (
	defaultConfigPath = "repository/conf/deployment.yaml"
	defaultEnvFile    = ".env"
)

type serveOptions struct {
	home       string
	configPath string
	envFile    string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.GetLogger().Error("Command failed", log.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

// newRootCommand builds the moonmap command. Running it without a subcommand serves.
func newRootCommand() *cobra.Command {
	opts := &serveOptions{}

	root := &cobra.Command{
		Use:           "moonmap",
		Short:         "Moon Map gated market dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.home, "home", "", "Path to the server home directory")
	root.PersistentFlags().StringVar(&opts.configPath, "config", defaultConfigPath,
		"Deployment configuration file, relative to the home directory unless absolute")
	root.PersistentFlags().StringVar(&opts.envFile, "env", defaultEnvFile,
		"Environment file loaded before the configuration, relative to the home directory unless absolute")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context(), opts)
		},
	})
	return root
}
