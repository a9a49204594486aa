// Package config provides configuration parsing for accordion tools.
//
// The configuration is stored in accordion.json. This package handles
// loading, saving, validating and watching it.
//
// # Configuration File Structure
//
//	{
//	  "break_above": 1024,
//	  "break_below": null,
//	  "duration": 300,
//	  "auto_close": true,
//	  "classes": {
//	    "item": "item-marker",
//	    "head": "head-marker",
//	    "content": "content-marker",
//	    "icon": "icon-marker"
//	  },
//	  "server": {
//	    "addr": "localhost:3000",
//	    "metrics": true,
//	    "reduced_motion_default": false
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.LoadFromDir(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	group := accordion.New(container, host, cfg.Options()...)
package config
