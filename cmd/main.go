package main

import (
    "github.com/evnalsb-cloud/protein-tracker/config"
    "github.com/evnalsb-cloud/protein-tracker/routes"
    "github.com/evnalsb-cloud/protein-tracker/utils"
)

func main() {
    config.InitDB()
    utils.InitS3()
    r := routes.SetupRouter()
    r.Run(":8080")
}
