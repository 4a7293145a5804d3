package database

var NewMigrate = newMigrate
