// SPDX-License-Identifier: EPL-2.0

// Package config loads the YAML configuration of the audtrim command.
//
// Example file:
//
//	export:
//	  format: mp3
//	  bitrate: 192
//	  output: cut.mp3
//	  mono: true
//	ffmpeg:
//	  path: /usr/local/bin/ffmpeg
//	logging:
//	  level: debug
//	  format: json
package config
