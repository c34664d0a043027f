// Package config defines the akirakey CLI configuration.
package config
