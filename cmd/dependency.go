package cmd

import (
	"context"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"log"
	commonJetstream "masjid-events/common/jetstream"
	"masjid-events/common/otel"
	"masjid-events/outbound/siteapi"
	"os"
)

func newCfg(name string) *viper.Viper {
	config := viper.New()

	config.SetConfigName(name)
	config.SetConfigType("yaml")
	config.AddConfigPath(".")

	err := config.ReadInConfig()
	if err != nil {
		log.Fatalln(err)
	}

	err = os.Setenv("TZ", config.GetString("server.timezone"))
	if err != nil {
		log.Fatalln(err)
	}

	return config
}

func newRedis(cfg *viper.Viper) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.GetString("redis.addr"),
		Password: cfg.GetString("redis.password"),
		DB:       0,
	})

	err := rdb.Ping(context.Background()).Err()
	if err != nil {
		log.Fatalln(err)
	}

	return rdb
}

func newNats(viper *viper.Viper) *nats.Conn {
	conn, err := nats.Connect(viper.GetString("nats.addr"))
	if err != nil {
		log.Fatalln(err)
	}

	return conn
}

func newJs(conn *nats.Conn) jetstream.JetStream {
	js, err := jetstream.New(conn)
	if err != nil {
		log.Fatalln(err)
	}

	return js
}

func createStreamWorkQueue(ctx context.Context, js jetstream.JetStream) jetstream.Stream {
	return commonJetstream.CreateQueueStream(ctx, js)
}

func newSiteClient(cfg *viper.Viper) *siteapi.Client {
	return siteapi.NewClient(cfg)
}

func initTracer(ctx context.Context, cfg *viper.Viper) func(context.Context) error {
	endpoint := cfg.GetString("otel.endpoint")
	if endpoint == "" {
		return func(context.Context) error { return nil }
	}

	shutdown, err := otel.Init(ctx, endpoint)
	if err != nil {
		log.Fatalln("unable to init tracer", err)
	}

	return shutdown
}
