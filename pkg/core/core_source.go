package core

// bootstrapSource is tiny-clj's self-hosted slice of the core library:
// a handful of forms that are more natural to express in terms of the
// native primitives than to hand-roll in Go. load_core evaluates each
// of these independently (see LoadCore), so one broken form here never
// prevents the rest from loading.
const bootstrapSource = `
(def empty-vector [])
(def empty-list (list))

(defn identity [x] x)

(defn second [coll] (first (rest coll)))

(defn last [coll]
  (if (nil? (rest coll))
    (first coll)
    (recur (rest coll))))

(defn constantly [x] (fn [& args] x))

(defn every? [pred coll]
  (if (nil? (seq coll))
    true
    (if (pred (first coll))
      (recur pred (rest coll))
      false)))

(defn some [pred coll]
  (if (nil? (seq coll))
    nil
    (if (pred (first coll))
      true
      (recur pred (rest coll)))))
`
