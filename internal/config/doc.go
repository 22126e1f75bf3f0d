// Package config loads and saves the optional .cargobump.yaml file that
// controls workspace discovery, write strategy, logging and theming.
package config
