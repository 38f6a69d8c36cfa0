package config

import (
	"github.com/spf13/viper"
)

type MqttConfig struct {
	Broker            string `mapstructure:"broker"`
	ConnTimeout       int    `mapstructure:"connTimeout"`
	Username          string `mapstructure:"username"`
	Password          string `mapstructure:"password"`
	DroneId           string `mapstructure:"droneId"`
	AnnounceTopic     string `mapstructure:"announceTopic"`
	AnnounceInterval  int    `mapstructure:"announceInterval"`
	AnnounceTimeout   int    `mapstructure:"announceTimeout"`
	DisconnectTimeout int    `mapstructure:"disconnectTimeout"`
	CertCheck         bool   `mapstructure:"certCheck"`
}

type FlightdConfig struct {
	SocketName string `mapstructure:"socketName"`
	QueueSize  int    `mapstructure:"queueSize"`
}

// JSON-based bridge configuration, times are in milliseconds.
type Config struct {
	Mqtt     *MqttConfig    `mapstructure:"mqtt"`
	Flightd  *FlightdConfig `mapstructure:"flightd"`
	LogLevel string         `mapstructure:"logLevel"`
}

func NewConfig(filename string) (*Config, error) {
	v := viper.New()

	v.SetDefault("logLevel", "info")

	v.SetDefault("mqtt.broker", "tls://localhost:8883")
	v.SetDefault("mqtt.connTimeout", 5000)
	v.SetDefault("mqtt.username", "")
	v.SetDefault("mqtt.password", "")
	v.SetDefault("mqtt.droneId", "drone-1")
	v.SetDefault("mqtt.announceTopic", "drone/announce")
	v.SetDefault("mqtt.announceInterval", 3000)
	v.SetDefault("mqtt.announceTimeout", 2000)
	v.SetDefault("mqtt.disconnectTimeout", 1000)
	v.SetDefault("mqtt.certCheck", true)

	v.SetDefault("flightd.socketName", "/var/run/flightd.sock")
	v.SetDefault("flightd.queueSize", 100)

	v.SetConfigFile(filename)
	v.SetConfigType("json")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	config := &Config{}
	err = v.Unmarshal(config)
	if err != nil {
		return nil, err
	}

	return config, nil
}
