package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host      string
	Port      string
	Mode      string
	APIPrefix string
}

type Mongo struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type Neo4j struct {
	URI      string
	User     string
	Password string
	Database string
}

type Timeouts struct {
	Store time.Duration
	Cache time.Duration
}

type Recommend struct {
	PopularMinReviews int
}

type Config struct {
	HTTP      HTTPServer
	Mongo     Mongo
	Redis     RedisCache
	Neo4j     Neo4j
	Timeouts  Timeouts
	Recommend Recommend
	LogLevel  string
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	return FromEnv()
}

// FromEnv builds the config from the current environment without touching
// flags or env files.
func FromEnv() *Config {
	return &Config{
		HTTP:      *newHTTP(),
		Mongo:     *newMongo(),
		Redis:     *newRedis(),
		Neo4j:     *newNeo4j(),
		Timeouts:  *newTimeouts(),
		Recommend: *newRecommend(),
		LogLevel:  getenv("LOG_LEVEL", "info"),
	}
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port:      getenv("HTTP_PORT", "8000"),
		Host:      getenv("HTTP_HOST", "0.0.0.0"),
		Mode:      getenv("HTTP_MODE", "RW"),
		APIPrefix: getenv("HTTP_API_PREFIX", ""),
	}
}

func newMongo() *Mongo {
	return &Mongo{
		Host:     getenv("MONGO_HOST", "localhost"),
		Port:     getenv("MONGO_PORT", "27017"),
		User:     getenv("MONGO_USER", ""),
		Password: getsecret("MONGO_PASSWORD", ""),
		DBName:   getenv("MONGO_DB", "cinemate"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "localhost"),
		Password: getsecret("REDIS_PASSWORD", ""),
		DB:       getint("REDIS_DB", 0),
	}
}

func newNeo4j() *Neo4j {
	return &Neo4j{
		URI:      getenv("NEO4J_URI", "bolt://localhost:7687"),
		User:     getenv("NEO4J_USER", "neo4j"),
		Password: getsecret("NEO4J_PASSWORD", "password"),
		Database: getenv("NEO4J_DATABASE", ""),
	}
}

func newTimeouts() *Timeouts {
	return &Timeouts{
		Store: getduration("STORE_TIMEOUT", 5*time.Second),
		Cache: getduration("CACHE_TIMEOUT", 500*time.Millisecond),
	}
}

func newRecommend() *Recommend {
	return &Recommend{
		PopularMinReviews: getint("POPULAR_MIN_REVIEWS", 100),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

func getsecret(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value\n", logtag, key)
		return defaultValue
	}
	fmt.Printf("%s %s is set\n", logtag, key)
	return val
}

func getint(key string, defaultValue int) int {
	raw := getenv(key, strconv.Itoa(defaultValue))
	val, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("%s %s must be an integer, got %q", logtag, key, raw)
	}
	return val
}

func getduration(key string, defaultValue time.Duration) time.Duration {
	raw := getenv(key, defaultValue.String())
	val, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("%s %s must be a duration, got %q", logtag, key, raw)
	}
	return val
}
