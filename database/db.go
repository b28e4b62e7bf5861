package database

import (
	"context"
	"time"

	"carelink/config"
	"carelink/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// InitDB connects to MongoDB and verifies the connection with a ping.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		utils.GetLogger().Fatal("MongoDB connection failed", zap.Error(err))
	}
	if err := client.Ping(ctx, nil); err != nil {
		utils.GetLogger().Fatal("MongoDB ping failed", zap.Error(err))
	}
	MongoClient = client
	utils.GetLogger().Info("Connected to MongoDB",
		zap.String("database", config.AppConfig.DatabaseName))
}

// DB returns a handle to the carelink application database.
func DB() *mongo.Database {
	return MongoClient.Database(config.AppConfig.DatabaseName)
}
