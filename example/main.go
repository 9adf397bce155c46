package main

import (
	"fmt"
	"log"

	"github.com/theflywheel/confmap"
)

func main() {
	// Create a table for configuration settings
	t := confmap.New()
	defer t.Close()

	fmt.Println("Table created successfully")

	// Insert some settings
	for i := 0; i < 10; i++ {
		key := fmt.Sprintf("option-%d", i)
		value := fmt.Sprintf("%d", i*100)

		if err := t.Set(key, value); err != nil {
			log.Fatalf("Failed to insert %q: %v", key, err)
		}
	}

	fmt.Println("Inserted 10 key-value pairs")

	// Retrieve and display some values, including missing ones
	for i := 0; i < 15; i += 2 {
		key := fmt.Sprintf("option-%d", i)

		value, found := t.Get(key)
		if found {
			fmt.Printf("Key %s => Value %s\n", key, value)
		} else {
			fmt.Printf("Key %s not found\n", key)
		}
	}

	// Update a value
	if err := t.Set("option-2", "999"); err != nil {
		log.Fatalf("Failed to update key: %v", err)
	}

	// Verify the update
	value, found := t.Get("option-2")
	if found {
		fmt.Printf("Updated option-2 => Value %s\n", value)
	}

	// Enumerate everything that was stored
	fmt.Printf("Stored keys (%d): %v\n", t.Len(), t.Keys())

	fmt.Println("Example completed successfully")
}
