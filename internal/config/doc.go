// Package config provides configuration parsing for toastkit.
//
// The configuration is stored in toastkit.json in the working directory.
// Every field is optional; missing fields keep their defaults.
//
// # Configuration File Structure
//
//	{
//	  "server": {
//	    "host": "localhost",
//	    "port": 3000,
//	    "shutdownTimeout": "5s"
//	  },
//	  "toast": {
//	    "containerId": "toastContainer",
//	    "infoDelay": "10s",
//	    "defaultDelay": "5s",
//	    "exitDelay": "300ms",
//	    "messageMode": "text"
//	  },
//	  "render": {
//	    "pretty": false
//	  }
//	}
//
// The TOASTKIT_PORT environment variable overrides server.port.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Address())
package config
