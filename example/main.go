// FILE: typeconf/example/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/typeconf/typeconf"
)

const configFilePath = "typecheck-demo.ini"

const initialConfig = `# repository-wide checker settings
[global]
strict_optional = true
max_errors = 50
search_path = src, stubs

; generated code is checked loosely
[proto.**]
disallow_untyped_defs = false
exclude = *_pb2.py
`

const updatedConfig = `# repository-wide checker settings, tightened
[global]
strict_optional = true
max_errors = 8
search_path = src, stubs

; generated code is checked loosely
[proto.**]
disallow_untyped_defs = false
exclude = *_pb2.py
`

func main() {
	// =========================================================================
	// PART 1: INITIAL SETUP
	// Create a clean configuration file on disk for our program to read.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 1: Creating initial configuration file...")

	// Defer cleanup to run at the very end of the program.
	defer func() {
		log.Println("---")
		log.Println("🧹 Cleaning up...")
		os.Remove(configFilePath)
		log.Printf("Removed %s.", configFilePath)
	}()

	if err := createInitialConfigFile(); err != nil {
		log.Fatalf("❌ Failed during initial file creation: %v", err)
	}
	log.Printf("✅ Initial configuration saved to %s.", configFilePath)

	// =========================================================================
	// PART 2: LOADING THROUGH THE BUILDER
	// This demonstrates extra options, validation, and per-module resolution.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 2: Loading with the Builder and resolving modules...")

	// Define a custom validator function.
	validator := func(f *typeconf.File) error {
		limit, err := f.Resolve("main").Int64("max_errors")
		if err != nil {
			return err
		}
		if limit < 1 {
			return fmt.Errorf("max_errors must be positive, got %d", limit)
		}
		return nil
	}

	// Use the builder to chain multiple configuration options.
	file, err := typeconf.NewBuilder().
		WithFile(configFilePath). // Specifies the config file to read.
		WithOption(typeconf.OptionSpec{ // Registers an option the catalog lacks.
			Name:        "demo_mode",
			Kind:        typeconf.KindBool,
			Default:     false,
			Description: "extra option registered by this demo",
		}).
		WithValidator(validator). // Adds a validation function to run at the end of the build.
		Build()
	if err != nil {
		log.Fatalf("❌ Builder failed: %v", err)
	}

	log.Println("✅ Builder finished successfully. Initial values loaded.")
	printResolution(file, "app.server")
	printResolution(file, "proto.gen.users")

	// =========================================================================
	// PART 3: DYNAMIC RELOADING WITH THE WATCHER
	// We'll now modify the file and verify the watcher picks up the change.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 3: Testing the file watcher...")

	initial, watcher, err := typeconf.New().Watch(configFilePath, typeconf.WatchOptions{
		PollInterval: 250 * time.Millisecond,
		Debounce:     100 * time.Millisecond,
	})
	if err != nil {
		log.Fatalf("❌ Failed to start the watcher: %v", err)
	}
	defer watcher.Stop()
	log.Println("✅ Watcher is now active with custom options.")

	before, _ := initial.Resolve("app.server").Int64("max_errors")
	log.Printf("   max_errors before the edit: %d", before)

	// Start a goroutine to modify the file after a short delay.
	var wg sync.WaitGroup
	wg.Add(1)
	go modifyFileOnDisk(&wg)
	log.Println("   (Modifier goroutine dispatched to change file in 1 second...)")

	log.Println("   (Waiting for watcher notification...)")
	select {
	case update := <-watcher.Updates():
		if update.Err != nil {
			log.Fatalf("❌ Reload failed: %v", update.Err)
		}
		log.Println("✅ Watcher delivered a reloaded file.")

		after, err := update.File.Resolve("app.server").Int64("max_errors")
		if err != nil {
			log.Fatalf("❌ Failed to read the reloaded value: %v", err)
		}
		if after != 8 {
			log.Fatalf("❌ VERIFICATION FAILED: Expected max_errors 8, but got %d.", after)
		}

		log.Println("✅ VERIFICATION SUCCESSFUL: The watcher picked up the new limit.")
		log.Printf("   max_errors after the edit: %d", after)

	case <-time.After(5 * time.Second):
		log.Fatalf("❌ TEST FAILED: Timed out waiting for watcher notification.")
	}

	wg.Wait()
}

// createInitialConfigFile is a helper to set up the initial file state.
func createInitialConfigFile() error {
	file, err := typeconf.Load(initialConfig)
	if err != nil {
		return err
	}
	return file.WriteFile(configFilePath)
}

// modifyFileOnDisk simulates an external program changing the config file.
func modifyFileOnDisk(wg *sync.WaitGroup) {
	defer wg.Done()
	time.Sleep(1 * time.Second)
	log.Println("   (Modifier goroutine: now changing file on disk...)")

	file, err := typeconf.Load(updatedConfig)
	if err != nil {
		log.Fatalf("❌ Modifier failed to parse the new configuration: %v", err)
	}
	if err := file.WriteFile(configFilePath); err != nil {
		log.Fatalf("❌ Modifier failed to save: %v", err)
	}
	log.Println("   (Modifier goroutine: finished.)")
}

// printResolution is a helper to display the effective options for a module.
func printResolution(file *typeconf.File, module string) {
	resolved := file.Resolve(module)

	strict, _ := resolved.Bool("strict_optional")
	untyped, _ := resolved.Bool("disallow_untyped_defs")
	limit, _ := resolved.Int64("max_errors")
	origin, _ := resolved.Origin("disallow_untyped_defs")

	fmt.Println("   --------------------------------------------------")
	fmt.Printf("             Module %s\n", module)
	fmt.Println("   --------------------------------------------------")
	fmt.Printf("     strict_optional:       %v\n", strict)
	fmt.Printf("     disallow_untyped_defs: %v (%s)\n", untyped, describeOrigin(origin))
	fmt.Printf("     max_errors:            %d\n", limit)
	fmt.Println("   --------------------------------------------------")
}

// describeOrigin renders where a value came from.
func describeOrigin(origin typeconf.Origin) string {
	if origin.Source == typeconf.SourceDefault {
		return "default"
	}
	return fmt.Sprintf("from [%s] line %d", origin.Section, origin.Line)
}
