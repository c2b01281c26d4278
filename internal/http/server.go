package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"kafka-console/internal/models"
	"kafka-console/internal/ports"

	log "github.com/sirupsen/logrus"
)

var _ ports.HTTPServer = (*Server)(nil)

const cacheRefreshTimeout = 5 * time.Second

type Server struct {
	cache             ports.ClusterCache
	db                ports.ClusterRepository
	describer         ports.MetadataDescriber
	preferredListener string
	httpServer        *http.Server
}

func NewServer(cache ports.ClusterCache, db ports.ClusterRepository, describer ports.MetadataDescriber, preferredListener string) *Server {
	return &Server{
		cache:             cache,
		db:                db,
		describer:         describer,
		preferredListener: preferredListener,
	}
}

// Handler returns the API routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/health", s.healthHandler)
	mux.HandleFunc("/api/kafkas", s.listClustersHandler)
	mux.HandleFunc("/api/kafkas/{kafkaId}", s.getClusterHandler)
	mux.HandleFunc("/api/kafkas/{kafkaId}/listeners", s.listListenersHandler)
	mux.HandleFunc("/api/kafkas/{kafkaId}/nodes", s.listNodesHandler)
	mux.HandleFunc("/api/kafkas/{kafkaId}/topics", s.listTopicsHandler)
	mux.HandleFunc("/api/kafkas/{kafkaId}/topics/{topicId}", s.getTopicHandler)
	mux.HandleFunc("/api/kafkas/{kafkaId}/topics/{topicId}/partitions", s.listPartitionsHandler)

	return mux
}

func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("Starting HTTP server on %s", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) listClustersHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	clusters, err := s.db.GetAllClusters(r.Context())
	if err != nil {
		log.Printf("Error listing clusters: %v", err)
		writeError(w, http.StatusInternalServerError, "Error retrieving clusters")
		return
	}

	resp := models.ClusterListResponse{Data: make([]models.ClusterResource, 0, len(clusters))}
	for i := range clusters {
		resp.Data = append(resp.Data, models.NewClusterResource(&clusters[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getClusterHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	cluster, ok := s.lookupCluster(w, r)
	if !ok {
		return
	}

	// Nodes are live data; the cluster is still served when the brokers cannot be reached.
	meta, err := s.describeCluster(r, cluster)
	if err != nil {
		log.WithField("cluster", cluster.ID).Warnf("Serving cluster without nodes: %v", err)
	} else {
		applyMetadata(cluster, meta)
	}

	writeJSON(w, http.StatusOK, models.ClusterResponse{Data: models.NewClusterResource(cluster)})
}

func (s *Server) listListenersHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	cluster, ok := s.lookupCluster(w, r)
	if !ok {
		return
	}

	listeners := cluster.Listeners
	if listeners == nil {
		listeners = []models.KafkaListener{}
	}
	writeJSON(w, http.StatusOK, models.ListenerListResponse{Data: listeners})
}

func (s *Server) listNodesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	cluster, meta, ok := s.lookupMetadata(w, r)
	if !ok {
		return
	}

	applyMetadata(cluster, meta)
	writeJSON(w, http.StatusOK, models.ClusterResponse{Data: models.NewClusterResource(cluster)})
}

func (s *Server) listTopicsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	includeHidden, err := parseBoolQuery(r, "includeHidden")
	if err != nil {
		writeError(w, http.StatusBadRequest, "includeHidden must be a boolean")
		return
	}

	_, meta, ok := s.lookupMetadata(w, r)
	if !ok {
		return
	}

	resp := models.TopicListResponse{Data: make([]models.TopicResource, 0, len(meta.Topics))}
	for _, t := range meta.Topics {
		if t.Hidden() && !includeHidden {
			continue
		}
		resp.Data = append(resp.Data, models.NewTopicResource(t, false))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getTopicHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	topic, ok := s.lookupTopic(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, models.TopicResponse{Data: models.NewTopicResource(topic, true)})
}

func (s *Server) listPartitionsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	topic, ok := s.lookupTopic(w, r)
	if !ok {
		return
	}

	partitions := topic.Partitions
	if partitions == nil {
		partitions = []models.Partition{}
	}
	writeJSON(w, http.StatusOK, models.PartitionListResponse{Data: partitions})
}

func (s *Server) lookupTopic(w http.ResponseWriter, r *http.Request) (models.Topic, bool) {
	_, meta, ok := s.lookupMetadata(w, r)
	if !ok {
		return models.Topic{}, false
	}

	topic, found := models.FindTopic(meta.Topics, r.PathValue("topicId"))
	if !found {
		writeError(w, http.StatusNotFound, "Topic not found")
		return models.Topic{}, false
	}
	return topic, true
}

// lookupMetadata resolves the cluster and describes it. It writes the error response itself.
func (s *Server) lookupMetadata(w http.ResponseWriter, r *http.Request) (*models.KafkaCluster, *models.ClusterMetadata, bool) {
	cluster, ok := s.lookupCluster(w, r)
	if !ok {
		return nil, nil, false
	}

	meta, err := s.describeCluster(r, cluster)
	if err != nil {
		log.WithField("cluster", cluster.ID).Errorf("Error describing cluster: %v", err)

		if errors.Is(err, ports.ErrUnsupportedAuthType) || errors.Is(err, ports.ErrNoUsableListener) {
			writeError(w, http.StatusConflict, err.Error())
			return nil, nil, false
		}
		writeError(w, http.StatusBadGateway, "Error fetching cluster metadata")
		return nil, nil, false
	}

	return cluster, meta, true
}

// describeCluster fetches live metadata through the listener picked by ?listener=,
// falling back to the configured preferred type.
func (s *Server) describeCluster(r *http.Request, cluster *models.KafkaCluster) (*models.ClusterMetadata, error) {
	preferred := r.URL.Query().Get("listener")
	if preferred == "" {
		preferred = s.preferredListener
	}

	listener, found := models.SelectListener(cluster.Listeners, preferred)
	if !found {
		return nil, ports.ErrNoUsableListener
	}

	log.WithFields(log.Fields{
		"cluster":  cluster.ID,
		"listener": listener.Type(),
	}).Debug("Describing cluster")

	return s.describer.Describe(r.Context(), listener)
}

func applyMetadata(cluster *models.KafkaCluster, meta *models.ClusterMetadata) {
	cluster.Nodes = meta.Nodes
	cluster.Controller = meta.Controller
	cluster.KafkaClusterID = meta.ClusterID
}

// lookupCluster resolves {kafkaId}, cache first. It writes the error response itself.
func (s *Server) lookupCluster(w http.ResponseWriter, r *http.Request) (*models.KafkaCluster, bool) {
	id := r.PathValue("kafkaId")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Cluster ID is required")
		return nil, false
	}

	start := time.Now()
	source := "cache"

	cluster, err := s.cache.GetCluster(r.Context(), id)
	if err != nil {
		log.Printf("Error accessing cache: %v", err)
	}

	if cluster == nil {
		source = "database"
		cluster, err = s.db.GetCluster(r.Context(), id)
		if errors.Is(err, ports.ErrClusterNotFound) {
			writeError(w, http.StatusNotFound, "Cluster not found")
			return nil, false
		}
		if err != nil {
			log.Printf("Error retrieving cluster from database: %v", err)
			writeError(w, http.StatusInternalServerError, "Error retrieving cluster")
			return nil, false
		}

		cached := *cluster
		go s.refreshCache(&cached)
	}

	log.WithFields(log.Fields{
		"cluster": id,
		"source":  source,
		"took":    time.Since(start).String(),
	}).Debug("Cluster fetched")

	return cluster, true
}

// refreshCache stores a cluster read from the database, then drops the entry again
// unless the database still holds that version. The invalidation of a concurrent
// tombstone or re-registration may have run before the write.
func (s *Server) refreshCache(cluster *models.KafkaCluster) {
	ctx, cancel := context.WithTimeout(context.Background(), cacheRefreshTimeout)
	defer cancel()

	if err := s.cache.SetCluster(ctx, cluster); err != nil {
		log.Printf("Failed to set cluster in cache: %v", err)
		return
	}

	current, err := s.db.GetCluster(ctx, cluster.ID)
	switch {
	case errors.Is(err, ports.ErrClusterNotFound):
	case err != nil:
		log.Printf("Failed to verify cached cluster: %v", err)
	case current.UpdatedAt.Equal(cluster.UpdatedAt):
		return
	}

	if err := s.cache.DeleteCluster(ctx, cluster.ID); err != nil {
		log.Printf("Failed to drop stale cluster from cache: %v", err)
	}
}

func parseBoolQuery(r *http.Request, key string) (bool, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return false, nil
	}
	return strconv.ParseBool(value)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
