// Package config loads the kiosk's static JSON document.
//
// It utilizes Viper for decoding and environment overrides, and godotenv for an
// optional .env file next to the document. The configuration is read once at
// process start and never mutated.
//
// # Document
//
//	{
//	  "website_url": "https://owlbear.rodeo",
//	  "port": 5000,
//	  "audio_files": {"1": "audio/sound1.mp3", "8": "audio/sound8.mp3"}
//	}
//
// Optional sections override the rest: server, browser, player, listener, log
// and storage. Relative audio paths resolve against the document's directory.
//
// # Usage
//
//	cfg, err := config.LoadConfig("config.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Port, cfg.SoundFiles()[1])
package config
