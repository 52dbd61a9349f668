package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
)

const baseURL = "http://localhost:3000/api"

// Simplified DTOs for the script
type loginResponse struct {
	Data struct {
		AccessToken string `json:"access_token"`
	} `json:"data"`
}

type formGroupsResponse struct {
	Data struct {
		PoolSize int `json:"pool_size"`
		Groups   []struct {
			AverageScore int `json:"average_score"`
			Members      []struct {
				Name   string `json:"name"`
				Course string `json:"course"`
			} `json:"members"`
		} `json:"groups"`
		Leftovers int `json:"leftovers"`
	} `json:"data"`
}

func main() {
	fmt.Println("=== Group Formation Simulation Client ===")

	token, err := loginAsAdmin()
	if err != nil {
		log.Fatalf("Admin login failed: %v", err)
	}
	fmt.Println("Authenticated as admin")

	for _, gender := range []string{"Boys", "Girls"} {
		for _, capacity := range []int{2, 3} {
			fmt.Printf("\n--- Forming %s groups of %d ---\n", gender, capacity)
			if err := runFormation(token, gender, capacity); err != nil {
				log.Printf("Formation failed: %v", err)
			}
		}
	}
}

func loginAsAdmin() (string, error) {
	body, _ := json.Marshal(map[string]string{
		"email":    "admin@hostel.local",
		"password": "admin12345",
	})

	resp, err := http.Post(baseURL+"/auth/staff/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("status %d: %s", resp.StatusCode, raw)
	}

	var parsed loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	return parsed.Data.AccessToken, nil
}

func runFormation(token, gender string, capacity int) error {
	body, _ := json.Marshal(map[string]interface{}{
		"gender":        gender,
		"room_capacity": capacity,
	})

	req, err := http.NewRequest(http.MethodPost, baseURL+"/matching/form-groups", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d: %s", resp.StatusCode, raw)
	}

	var parsed formGroupsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return err
	}

	fmt.Printf("Pool size: %d, groups formed: %d, leftovers: %d\n",
		parsed.Data.PoolSize, len(parsed.Data.Groups), parsed.Data.Leftovers)
	for i, g := range parsed.Data.Groups {
		fmt.Printf("  Group %d (avg score %d):\n", i+1, g.AverageScore)
		for _, m := range g.Members {
			fmt.Printf("    - %s (%s)\n", m.Name, m.Course)
		}
	}
	return nil
}
