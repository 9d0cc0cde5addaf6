package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark-john-ignacio/school-cashier-system/app/config"
	"github.com/mark-john-ignacio/school-cashier-system/app/database"
	"github.com/mark-john-ignacio/school-cashier-system/app/models"
)

// add_user creates a staff account so someone can log in on a fresh install.
func main() {
	email := flag.String("email", "", "account email")
	firstName := flag.String("first", "", "first name")
	lastName := flag.String("last", "", "last name")
	role := flag.String("role", "cashier", "role name (cashier or admin)")
	flag.Parse()

	password := os.Getenv("NEW_USER_PASSWORD")
	if *email == "" || *firstName == "" || *lastName == "" || password == "" {
		fmt.Println("Usage: add_user -email ... -first ... -last ... [-role cashier]")
		fmt.Println("The password is read from NEW_USER_PASSWORD.")
		os.Exit(1)
	}

	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	user := &models.User{
		Email:     *email,
		FirstName: *firstName,
		LastName:  *lastName,
		Password:  password,
	}

	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	if err := database.AssignRole(db, user.ID, *role); err != nil {
		fmt.Printf("User created but role assignment failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created: %s %s (%s) as %s\n", user.FirstName, user.LastName, user.Email, *role)
}
